// Package services implements the Organiser, the service through which every
// entity in the graph is created, read, updated and deleted. It keeps the
// bidirectional id-lists consistent and performs the cascading deletes; no
// caller mutates persisted records behind its back.
package services

import (
	"github.com/charmbracelet/log"

	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/survey"
	"github.com/gravadigital/poorganiser-api/internal/domain/user"
	"github.com/gravadigital/poorganiser-api/internal/logger"
	"github.com/gravadigital/poorganiser-api/internal/storage"
	"github.com/gravadigital/poorganiser-api/internal/validation"
)

// Organiser handles the business logic of the event-organizing graph. All
// operations are synchronous and single-writer; callers serialize access.
type Organiser struct {
	store           storage.Store
	log             *log.Logger
	userValidator   validation.UserValidation
	eventValidator  validation.EventValidation
	surveyValidator validation.SurveyValidation
}

// New creates a new Organiser on top of a persistence store
func New(store storage.Store) *Organiser {
	return &Organiser{
		store: store,
		log:   logger.Service("organiser"),
	}
}

// GetOwner returns the user owning the given entity. Supported argument
// types are *event.Event, *survey.Survey and *survey.Question; anything
// else fails with ErrUnsupportedType. The entity is re-read from the store
// before its owner is looked up.
func (o *Organiser) GetOwner(obj any) (*user.User, error) {
	var ownerID int

	switch v := obj.(type) {
	case *event.Event:
		evt, err := o.resolveEvent(ref(v))
		if err != nil {
			return nil, err
		}
		ownerID = evt.OwnerID
	case *survey.Survey:
		svy, err := o.resolveSurvey(ref(v))
		if err != nil {
			return nil, err
		}
		ownerID = svy.OwnerID
	case *survey.Question:
		qst, err := o.resolveQuestion(ref(v))
		if err != nil {
			return nil, err
		}
		ownerID = qst.OwnerID
	default:
		return nil, ErrUnsupportedType
	}

	return o.resolveUser(byID(ownerID))
}
