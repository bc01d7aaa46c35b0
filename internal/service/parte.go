package service

import (
	"context"
	"fmt"

	"github.com/jarteaga/parte_reporting_system/internal/models"
	"github.com/jarteaga/parte_reporting_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// EstadoAbierto is the state a parte is born with when the redactor does not
// say otherwise.
const EstadoAbierto = "abierto"

// ParteService orchestrates the two-step submission of an incident report.
//
// The parte and its children are not locked against concurrent editors: two
// simultaneous submissions for the same parte race at the storage layer and
// the later commit wins. A concurrent-editing UI has to deal with that on its
// own; this service only guarantees that each step commits or rolls back as a
// whole.
type ParteService interface {
	SubmitStep1(ctx context.Context, in ParteInput) (Step1Result, error)
	SubmitStep2(ctx context.Context, in Step2Input) (Step2Result, error)
	GetParte(ctx context.Context, id int64) (*models.ParteAggregate, error)
}

type parteService struct {
	tx        TxManager
	cache     ParteCache
	publisher webhook.Publisher
	logger    *logrus.Logger
}

func NewParteService(tx TxManager, cache ParteCache, publisher webhook.Publisher, logger *logrus.Logger) ParteService {
	return &parteService{
		tx:        tx,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// SubmitStep1 creates the parte when the payload carries no id, or patches the
// existing one when it does. The whole step runs inside one transaction scope.
func (s *parteService) SubmitStep1(ctx context.Context, in ParteInput) (Step1Result, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "parte",
		"method":  "SubmitStep1",
	})
	log.Info("Submitting parte step 1")

	if err := validateStep1(in); err != nil {
		log.WithError(err).Warn("Step 1 payload rejected")
		return Step1Result{}, err
	}

	var parteID int64
	err := s.tx.Run(ctx, func(scope TxScope) error {
		id, err := upsertRecord(ctx, in, parteUpsert(scope.Partes()))
		if err != nil {
			return err
		}
		parteID = id
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Step 1 rolled back")
		return Step1Result{}, fmt.Errorf("service: could not submit step 1: %w", err)
	}

	s.invalidateCache(ctx, parteID, log)

	log.WithField("parte_id", parteID).Info("Parte step 1 committed")
	return Step1Result{ParteID: parteID}, nil
}

// SubmitStep2 merges the classification fields, upserts the owner and the
// primary affected property, and reconciles the vehicle (with occupants) and
// other-property collections against the submission — all inside a single
// transaction scope. Any failure aborts the remaining sub-steps and rolls back
// everything the step wrote.
func (s *parteService) SubmitStep2(ctx context.Context, in Step2Input) (Step2Result, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "parte",
		"method":   "SubmitStep2",
		"parte_id": in.Caracteristicas.ParteID,
	})
	log.Info("Submitting parte step 2")

	if err := validateStep2(in); err != nil {
		log.WithError(err).Warn("Step 2 payload rejected")
		return Step2Result{}, err
	}

	var (
		res    Step2Result
		estado string
	)
	err := s.tx.Run(ctx, func(scope TxScope) error {
		parte, err := scope.Partes().GetByID(ctx, in.Caracteristicas.ParteID)
		if err != nil {
			return err
		}
		merged := applyCaracteristicas(*parte, in.Caracteristicas)
		if err := scope.Partes().Update(ctx, &merged); err != nil {
			return err
		}
		estado = merged.Estado

		propietarioID, err := upsertRecord(ctx, in.Propietario, propietarioUpsert(scope.Propietarios()))
		if err != nil {
			return err
		}

		var inmuebleID *int64
		if in.InmuebleAfectado != nil {
			id, err := upsertInmueble(ctx, scope.Inmuebles(), parte.ID, propietarioID, *in.InmuebleAfectado)
			if err != nil {
				return err
			}
			inmuebleID = &id
		}

		vehiculos, err := reconcileVehiculos(ctx, scope, parte.ID, propietarioID, in.Vehiculos)
		if err != nil {
			return err
		}

		otros, err := reconcileChildren(ctx, newOtroInmuebleChildStore(scope.OtrosInmuebles()), parte.ID, in.OtrosInmuebles)
		if err != nil {
			return err
		}

		res = Step2Result{
			ParteID:        parte.ID,
			PropietarioID:  propietarioID,
			InmuebleID:     inmuebleID,
			OtrosInmuebles: otros,
			VehiculosDiff:  vehiculos.Diff,
			Vehiculos:      vehiculos.Vehiculos,
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Step 2 rolled back")
		return Step2Result{}, fmt.Errorf("service: could not submit step 2: %w", err)
	}

	s.invalidateCache(ctx, res.ParteID, log)

	if err := s.publisher.Publish(ctx, webhook.NewParteEvent(res.ParteID, estado, 2)); err != nil {
		// Delivery is best effort; the submission already committed.
		log.WithError(err).Warn("Failed to enqueue parte event")
	}

	log.WithFields(logrus.Fields{
		"propietario_id": res.PropietarioID,
		"vehiculos":      len(res.Vehiculos),
	}).Info("Parte step 2 committed")
	return res, nil
}

// GetParte assembles the full aggregate for the client to resume a draft,
// serving from cache when possible.
func (s *parteService) GetParte(ctx context.Context, id int64) (*models.ParteAggregate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "parte",
		"method":   "GetParte",
		"parte_id": id,
	})

	cached, err := s.cache.GetParte(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Parte cache lookup failed")
	} else if cached != nil {
		log.Debug("Parte served from cache")
		return cached, nil
	}

	var agg *models.ParteAggregate
	err = s.tx.Run(ctx, func(scope TxScope) error {
		built, err := buildAggregate(ctx, scope, id)
		if err != nil {
			return err
		}
		agg = built
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not load parte %d: %w", id, err)
	}

	if err := s.cache.SetParte(ctx, agg); err != nil {
		log.WithError(err).Warn("Failed to cache parte")
	}
	return agg, nil
}

func (s *parteService) invalidateCache(ctx context.Context, parteID int64, log *logrus.Entry) {
	if err := s.cache.Invalidate(ctx, parteID); err != nil {
		log.WithError(err).Warn("Failed to invalidate parte cache")
	}
}

func buildAggregate(ctx context.Context, scope TxScope, id int64) (*models.ParteAggregate, error) {
	parte, err := scope.Partes().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inmueble, err := scope.Inmuebles().FindByParte(ctx, id)
	if err != nil {
		return nil, err
	}

	otros, err := scope.OtrosInmuebles().ListByParte(ctx, id)
	if err != nil {
		return nil, err
	}

	vehiculos, err := scope.Vehiculos().ListByParte(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, v := range vehiculos {
		ocupantes, err := scope.Ocupantes().ListByVehiculo(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		v.Ocupantes = ocupantes
	}

	// The owner hangs off whichever dependent references it.
	var propietario *models.Propietario
	propietarioID := int64(0)
	if inmueble != nil {
		propietarioID = inmueble.PropietarioID
	} else if len(vehiculos) > 0 {
		propietarioID = vehiculos[0].PropietarioID
	}
	if propietarioID != 0 {
		propietario, err = scope.Propietarios().GetByID(ctx, propietarioID)
		if err != nil {
			return nil, err
		}
	}

	return &models.ParteAggregate{
		Parte:            parte,
		Propietario:      propietario,
		InmuebleAfectado: inmueble,
		OtrosInmuebles:   otros,
		Vehiculos:        vehiculos,
	}, nil
}

func parteUpsert(store ParteStore) upsertFuncs[ParteInput, models.Parte] {
	return upsertFuncs[ParteInput, models.Parte]{
		fetch: func(ctx context.Context, id int64) (models.Parte, error) {
			p, err := store.GetByID(ctx, id)
			if err != nil {
				return models.Parte{}, err
			}
			return *p, nil
		},
		create: func(ctx context.Context, in ParteInput) (int64, error) {
			p := applyParteFields(models.Parte{}, in)
			if p.Estado == "" {
				p.Estado = EstadoAbierto
			}
			return store.Create(ctx, &p)
		},
		apply: applyParteFields,
		update: func(ctx context.Context, p models.Parte) error {
			return store.Update(ctx, &p)
		},
	}
}

func propietarioUpsert(store PropietarioStore) upsertFuncs[PropietarioInput, models.Propietario] {
	return upsertFuncs[PropietarioInput, models.Propietario]{
		fetch: func(ctx context.Context, id int64) (models.Propietario, error) {
			p, err := store.GetByID(ctx, id)
			if err != nil {
				return models.Propietario{}, err
			}
			return *p, nil
		},
		create: func(ctx context.Context, in PropietarioInput) (int64, error) {
			p := applyPropietarioFields(models.Propietario{}, in)
			return store.Create(ctx, &p)
		},
		apply: applyPropietarioFields,
		update: func(ctx context.Context, p models.Propietario) error {
			return store.Update(ctx, &p)
		},
	}
}

// upsertInmueble runs the shared upsert with the parte and owner references
// injected. An id that belongs to another parte fails with ErrNotFound: the
// record is never re-parented.
func upsertInmueble(ctx context.Context, store InmuebleStore, parteID, propietarioID int64, in InmuebleInput) (int64, error) {
	fns := upsertFuncs[InmuebleInput, models.InmuebleAfectado]{
		fetch: func(ctx context.Context, id int64) (models.InmuebleAfectado, error) {
			m, err := store.GetByID(ctx, id)
			if err != nil {
				return models.InmuebleAfectado{}, err
			}
			if m.ParteID != parteID {
				return models.InmuebleAfectado{}, fmt.Errorf("%w: inmueble %d does not belong to parte %d", ErrNotFound, id, parteID)
			}
			return *m, nil
		},
		create: func(ctx context.Context, in InmuebleInput) (int64, error) {
			m := applyInmuebleFields(models.InmuebleAfectado{ParteID: parteID, PropietarioID: propietarioID}, in)
			return store.Create(ctx, &m)
		},
		apply: func(existing models.InmuebleAfectado, in InmuebleInput) models.InmuebleAfectado {
			m := applyInmuebleFields(existing, in)
			m.PropietarioID = propietarioID
			return m
		},
		update: func(ctx context.Context, m models.InmuebleAfectado) error {
			return store.Update(ctx, &m)
		},
	}
	return upsertRecord(ctx, in, fns)
}
