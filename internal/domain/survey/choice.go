package survey

import "github.com/gravadigital/poorganiser-api/internal/domain/record"

// Choice is one selectable answer belonging to a question
type Choice struct {
	ID         int    `json:"id"`
	QuestionID int    `json:"question_id"`
	Text       string `json:"choice"`
}

// NewChoice creates an unpersisted choice
func NewChoice(questionID int, text string) *Choice {
	return &Choice{
		QuestionID: questionID,
		Text:       text,
	}
}

func (c *Choice) GetID() int        { return c.ID }
func (c *Choice) SetID(id int)      { c.ID = id }
func (c *Choice) Kind() record.Kind { return record.KindChoice }

// Clone returns an independent copy of the choice
func (c *Choice) Clone() record.Record {
	dup := *c
	return &dup
}
