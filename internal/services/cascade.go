package services

import (
	"errors"
	"fmt"

	"github.com/gravadigital/poorganiser-api/internal/domain/event"
	"github.com/gravadigital/poorganiser-api/internal/domain/record"
	"github.com/gravadigital/poorganiser-api/internal/domain/survey"
	"github.com/gravadigital/poorganiser-api/internal/domain/user"
	"github.com/gravadigital/poorganiser-api/internal/storage"
)

// The delete rules of the whole graph live in one table so they can be
// audited in one place. Deleting a record first visits each dependent
// entry in order: cascade entries recursively delete the referencing
// records, prune entries remove the deleted id (or a derived id) from a
// referencing record's id-list. Referencing records that no longer exist
// are skipped; a cascade in progress may already have removed them.

type cascadeAction int

const (
	actionCascade cascadeAction = iota
	actionPrune
)

type dependent struct {
	// kind of the referencing records
	kind record.Kind

	action cascadeAction

	// collect returns the ids of the referencing records
	collect func(o *Organiser, id int) ([]int, error)

	// prune removes the reference from one referencing record; only set
	// for actionPrune entries
	prune func(o *Organiser, refID, id int) error
}

var cascadeTable = map[record.Kind][]dependent{
	record.KindEvent: {
		{
			kind:    record.KindAttendance,
			action:  actionCascade,
			collect: collectEventAttendances,
		},
		{
			kind:    record.KindSurvey,
			action:  actionCascade,
			collect: collectEventSurveys,
		},
		{
			kind:    record.KindUser,
			action:  actionPrune,
			collect: collectEventOwner,
			prune:   pruneUserEventLists,
		},
	},
	record.KindAttendance: {
		{
			kind:    record.KindEvent,
			action:  actionPrune,
			collect: collectAttendanceEvent,
			prune:   pruneEventAttendanceList,
		},
		{
			kind:    record.KindUser,
			action:  actionPrune,
			collect: collectAttendanceUser,
			prune:   pruneUserAttendingList,
		},
	},
	record.KindSurvey: {
		{
			kind:    record.KindQuestion,
			action:  actionCascade,
			collect: collectSurveyQuestions,
		},
		{
			kind:    record.KindUser,
			action:  actionPrune,
			collect: collectSurveyOwner,
			prune:   pruneUserSurveyList,
		},
		{
			kind:    record.KindEvent,
			action:  actionPrune,
			collect: collectSurveyEvent,
			prune:   pruneEventSurveyList,
		},
	},
	record.KindQuestion: {
		{
			kind:    record.KindResponse,
			action:  actionCascade,
			collect: collectQuestionResponses,
		},
		{
			kind:    record.KindChoice,
			action:  actionCascade,
			collect: collectQuestionChoices,
		},
		{
			kind:    record.KindUser,
			action:  actionPrune,
			collect: collectQuestionOwner,
			prune:   pruneUserQuestionList,
		},
		{
			kind:    record.KindSurvey,
			action:  actionPrune,
			collect: collectQuestionSurvey,
			prune:   pruneSurveyQuestionList,
		},
	},
	record.KindChoice: {
		{
			kind:    record.KindQuestion,
			action:  actionPrune,
			collect: collectChoiceQuestion,
			prune:   pruneQuestionChoiceList,
		},
		{
			kind:    record.KindResponse,
			action:  actionPrune,
			collect: collectChoiceResponses,
			prune:   pruneResponseChoiceList,
		},
	},
	record.KindResponse: {
		{
			kind:    record.KindUser,
			action:  actionPrune,
			collect: collectResponseResponder,
			prune:   pruneUserResponseList,
		},
		{
			kind:    record.KindQuestion,
			action:  actionPrune,
			collect: collectResponseQuestion,
			prune:   pruneQuestionResponseList,
		},
	},
}

// cascadeDelete removes a record after walking its dependents. The record
// must exist when called; referencing records may legitimately be gone.
func (o *Organiser) cascadeDelete(kind record.Kind, id int) error {
	for _, dep := range cascadeTable[kind] {
		refIDs, err := dep.collect(o, id)
		if err != nil {
			return err
		}

		for _, refID := range refIDs {
			switch dep.action {
			case actionCascade:
				if err := o.cascadeDelete(dep.kind, refID); err != nil {
					return err
				}
			case actionPrune:
				if err := dep.prune(o, refID, id); err != nil {
					return err
				}
			}
		}
	}

	if err := o.store.Delete(id, kind); err != nil {
		return fmt.Errorf("cascade delete %s %d: %w", kind, id, err)
	}

	o.log.Debug("Record deleted", "kind", kind, "id", id)
	return nil
}

// Collectors

func collectEventAttendances(o *Organiser, eventID int) ([]int, error) {
	evt, err := o.getIfExists(eventID, record.KindEvent)
	if err != nil || evt == nil {
		return nil, err
	}
	return evt.(*event.Event).AttendanceIDs.Clone(), nil
}

func collectEventSurveys(o *Organiser, eventID int) ([]int, error) {
	evt, err := o.getIfExists(eventID, record.KindEvent)
	if err != nil || evt == nil {
		return nil, err
	}
	return evt.(*event.Event).SurveyIDs.Clone(), nil
}

func collectEventOwner(o *Organiser, eventID int) ([]int, error) {
	evt, err := o.getIfExists(eventID, record.KindEvent)
	if err != nil || evt == nil {
		return nil, err
	}
	if e := evt.(*event.Event); e.HasOwner() {
		return []int{e.OwnerID}, nil
	}
	return nil, nil
}

func collectAttendanceEvent(o *Organiser, attendanceID int) ([]int, error) {
	att, err := o.getIfExists(attendanceID, record.KindAttendance)
	if err != nil || att == nil {
		return nil, err
	}
	return []int{att.(*event.Attendance).EventID}, nil
}

func collectAttendanceUser(o *Organiser, attendanceID int) ([]int, error) {
	att, err := o.getIfExists(attendanceID, record.KindAttendance)
	if err != nil || att == nil {
		return nil, err
	}
	return []int{att.(*event.Attendance).UserID}, nil
}

func collectSurveyQuestions(o *Organiser, surveyID int) ([]int, error) {
	svy, err := o.getIfExists(surveyID, record.KindSurvey)
	if err != nil || svy == nil {
		return nil, err
	}
	return svy.(*survey.Survey).QuestionIDs.Clone(), nil
}

func collectSurveyOwner(o *Organiser, surveyID int) ([]int, error) {
	svy, err := o.getIfExists(surveyID, record.KindSurvey)
	if err != nil || svy == nil {
		return nil, err
	}
	return []int{svy.(*survey.Survey).OwnerID}, nil
}

func collectSurveyEvent(o *Organiser, surveyID int) ([]int, error) {
	svy, err := o.getIfExists(surveyID, record.KindSurvey)
	if err != nil || svy == nil {
		return nil, err
	}
	if s := svy.(*survey.Survey); s.HasEvent() {
		return []int{s.EventID}, nil
	}
	return nil, nil
}

func collectQuestionResponses(o *Organiser, questionID int) ([]int, error) {
	qst, err := o.getIfExists(questionID, record.KindQuestion)
	if err != nil || qst == nil {
		return nil, err
	}
	return qst.(*survey.Question).ResponseIDs.Clone(), nil
}

func collectQuestionChoices(o *Organiser, questionID int) ([]int, error) {
	qst, err := o.getIfExists(questionID, record.KindQuestion)
	if err != nil || qst == nil {
		return nil, err
	}
	return qst.(*survey.Question).AllowedChoiceIDs.Clone(), nil
}

func collectQuestionOwner(o *Organiser, questionID int) ([]int, error) {
	qst, err := o.getIfExists(questionID, record.KindQuestion)
	if err != nil || qst == nil {
		return nil, err
	}
	return []int{qst.(*survey.Question).OwnerID}, nil
}

func collectQuestionSurvey(o *Organiser, questionID int) ([]int, error) {
	qst, err := o.getIfExists(questionID, record.KindQuestion)
	if err != nil || qst == nil {
		return nil, err
	}
	if q := qst.(*survey.Question); q.HasSurvey() {
		return []int{q.SurveyID}, nil
	}
	return nil, nil
}

func collectChoiceQuestion(o *Organiser, choiceID int) ([]int, error) {
	cho, err := o.getIfExists(choiceID, record.KindChoice)
	if err != nil || cho == nil {
		return nil, err
	}
	return []int{cho.(*survey.Choice).QuestionID}, nil
}

func collectChoiceResponses(o *Organiser, choiceID int) ([]int, error) {
	matches, err := storage.ScanAs(o.store, record.KindResponse, func(r *survey.Response) bool {
		return r.ChoiceIDs.Contains(choiceID)
	})
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(matches))
	for _, r := range matches {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

func collectResponseResponder(o *Organiser, responseID int) ([]int, error) {
	rsp, err := o.getIfExists(responseID, record.KindResponse)
	if err != nil || rsp == nil {
		return nil, err
	}
	return []int{rsp.(*survey.Response).ResponderID}, nil
}

func collectResponseQuestion(o *Organiser, responseID int) ([]int, error) {
	rsp, err := o.getIfExists(responseID, record.KindResponse)
	if err != nil || rsp == nil {
		return nil, err
	}
	return []int{rsp.(*survey.Response).QuestionID}, nil
}

// Pruners. Each loads the referencing record, removes the reference and
// writes it back; missing referencing records are skipped.

func pruneUserEventLists(o *Organiser, userID, eventID int) error {
	return pruneList[*user.User](o, userID, record.KindUser, func(u *user.User) {
		u.EventsOrganised.Remove(eventID)
		u.EventsAttending.Remove(eventID)
	})
}

func pruneEventAttendanceList(o *Organiser, eventID, attendanceID int) error {
	return pruneList[*event.Event](o, eventID, record.KindEvent, func(e *event.Event) {
		e.AttendanceIDs.Remove(attendanceID)
	})
}

func pruneUserAttendingList(o *Organiser, userID, attendanceID int) error {
	att, err := o.getIfExists(attendanceID, record.KindAttendance)
	if err != nil || att == nil {
		return err
	}
	eventID := att.(*event.Attendance).EventID
	return pruneList[*user.User](o, userID, record.KindUser, func(u *user.User) {
		u.EventsAttending.Remove(eventID)
	})
}

func pruneUserSurveyList(o *Organiser, userID, surveyID int) error {
	return pruneList[*user.User](o, userID, record.KindUser, func(u *user.User) {
		u.SurveyIDs.Remove(surveyID)
	})
}

func pruneEventSurveyList(o *Organiser, eventID, surveyID int) error {
	return pruneList[*event.Event](o, eventID, record.KindEvent, func(e *event.Event) {
		e.SurveyIDs.Remove(surveyID)
	})
}

func pruneUserQuestionList(o *Organiser, userID, questionID int) error {
	return pruneList[*user.User](o, userID, record.KindUser, func(u *user.User) {
		u.QuestionIDs.Remove(questionID)
	})
}

func pruneSurveyQuestionList(o *Organiser, surveyID, questionID int) error {
	return pruneList[*survey.Survey](o, surveyID, record.KindSurvey, func(s *survey.Survey) {
		s.QuestionIDs.Remove(questionID)
	})
}

func pruneQuestionChoiceList(o *Organiser, questionID, choiceID int) error {
	return pruneList[*survey.Question](o, questionID, record.KindQuestion, func(q *survey.Question) {
		q.AllowedChoiceIDs.Remove(choiceID)
	})
}

func pruneResponseChoiceList(o *Organiser, responseID, choiceID int) error {
	return pruneList[*survey.Response](o, responseID, record.KindResponse, func(r *survey.Response) {
		r.ChoiceIDs.Remove(choiceID)
	})
}

func pruneUserResponseList(o *Organiser, userID, responseID int) error {
	return pruneList[*user.User](o, userID, record.KindUser, func(u *user.User) {
		u.ResponseIDs.Remove(responseID)
	})
}

func pruneQuestionResponseList(o *Organiser, questionID, responseID int) error {
	return pruneList[*survey.Question](o, questionID, record.KindQuestion, func(q *survey.Question) {
		q.ResponseIDs.Remove(responseID)
	})
}

// getIfExists fetches a record, mapping absence to a nil record
func (o *Organiser) getIfExists(id int, kind record.Kind) (record.Record, error) {
	rec, err := o.store.Get(id, kind)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s %d: %w", kind, id, err)
	}
	return rec, nil
}

// pruneList applies a mutation to a referencing record and persists it;
// absent records are skipped.
func pruneList[T record.Record](o *Organiser, id int, kind record.Kind, mutate func(T)) error {
	rec, err := o.getIfExists(id, kind)
	if err != nil || rec == nil {
		return err
	}

	typed, ok := rec.(T)
	if !ok {
		return fmt.Errorf("prune %s %d: unexpected record type %T", kind, id, rec)
	}

	mutate(typed)
	if err := o.store.Update(typed); err != nil {
		return fmt.Errorf("prune %s %d: %w", kind, id, err)
	}
	return nil
}
