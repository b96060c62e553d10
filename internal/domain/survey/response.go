package survey

import "github.com/gravadigital/poorganiser-api/internal/domain/record"

// Response is one user's answer to a question. ChoiceIDs is a subset of the
// question's allowed choices at creation time; choice deletions prune it.
type Response struct {
	ID          int           `json:"id"`
	ResponderID int           `json:"responder_id"`
	QuestionID  int           `json:"question_id"`
	Text        string        `json:"response_text,omitempty"`
	ChoiceIDs   record.IDList `json:"choice_ids"`
}

// NewResponse creates an unpersisted response
func NewResponse(responderID, questionID int, text string, choiceIDs []int) *Response {
	ids := record.IDList{}
	for _, id := range choiceIDs {
		ids.Add(id)
	}
	return &Response{
		ResponderID: responderID,
		QuestionID:  questionID,
		Text:        text,
		ChoiceIDs:   ids,
	}
}

func (r *Response) GetID() int        { return r.ID }
func (r *Response) SetID(id int)      { r.ID = id }
func (r *Response) Kind() record.Kind { return record.KindResponse }

// Clone returns an independent copy of the response
func (r *Response) Clone() record.Record {
	dup := *r
	dup.ChoiceIDs = r.ChoiceIDs.Clone()
	return &dup
}
