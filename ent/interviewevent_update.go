// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/jobprep/ent/interviewevent"
	"github.com/abhisek/jobprep/ent/predicate"
)

// InterviewEventUpdate is the builder for updating InterviewEvent entities.
type InterviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewEventMutation
}

// Where appends a list predicates to the InterviewEventUpdate builder.
func (_u *InterviewEventUpdate) Where(ps ...predicate.InterviewEvent) *InterviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewEventUpdate) SetSessionID(v string) *InterviewEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableSessionID(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *InterviewEventUpdate) SetAction(v string) *InterviewEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableAction(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *InterviewEventUpdate) SetJobTitle(v string) *InterviewEventUpdate {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableJobTitle(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// SetInterviewType sets the "interview_type" field.
func (_u *InterviewEventUpdate) SetInterviewType(v string) *InterviewEventUpdate {
	_u.mutation.SetInterviewType(v)
	return _u
}

// SetNillableInterviewType sets the "interview_type" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableInterviewType(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetInterviewType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *InterviewEventUpdate) SetDifficulty(v string) *InterviewEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableDifficulty(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionsTotal sets the "questions_total" field.
func (_u *InterviewEventUpdate) SetQuestionsTotal(v int) *InterviewEventUpdate {
	_u.mutation.ResetQuestionsTotal()
	_u.mutation.SetQuestionsTotal(v)
	return _u
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableQuestionsTotal(v *int) *InterviewEventUpdate {
	if v != nil {
		_u.SetQuestionsTotal(*v)
	}
	return _u
}

// AddQuestionsTotal adds value to the "questions_total" field.
func (_u *InterviewEventUpdate) AddQuestionsTotal(v int) *InterviewEventUpdate {
	_u.mutation.AddQuestionsTotal(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *InterviewEventUpdate) SetQuestionsAnswered(v int) *InterviewEventUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableQuestionsAnswered(v *int) *InterviewEventUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *InterviewEventUpdate) AddQuestionsAnswered(v int) *InterviewEventUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetQuestionsSkipped sets the "questions_skipped" field.
func (_u *InterviewEventUpdate) SetQuestionsSkipped(v int) *InterviewEventUpdate {
	_u.mutation.ResetQuestionsSkipped()
	_u.mutation.SetQuestionsSkipped(v)
	return _u
}

// SetNillableQuestionsSkipped sets the "questions_skipped" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableQuestionsSkipped(v *int) *InterviewEventUpdate {
	if v != nil {
		_u.SetQuestionsSkipped(*v)
	}
	return _u
}

// AddQuestionsSkipped adds value to the "questions_skipped" field.
func (_u *InterviewEventUpdate) AddQuestionsSkipped(v int) *InterviewEventUpdate {
	_u.mutation.AddQuestionsSkipped(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *InterviewEventUpdate) SetAverageScore(v int) *InterviewEventUpdate {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableAverageScore(v *int) *InterviewEventUpdate {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *InterviewEventUpdate) AddAverageScore(v int) *InterviewEventUpdate {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *InterviewEventUpdate) SetBestScore(v int) *InterviewEventUpdate {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableBestScore(v *int) *InterviewEventUpdate {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *InterviewEventUpdate) AddBestScore(v int) *InterviewEventUpdate {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *InterviewEventUpdate) SetClassification(v string) *InterviewEventUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *InterviewEventUpdate) SetNillableClassification(v *string) *InterviewEventUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// Mutation returns the InterviewEventMutation object of the builder.
func (_u *InterviewEventUpdate) Mutation() *InterviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InterviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(interviewevent.Table, interviewevent.Columns, sqlgraph.NewFieldSpec(interviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(interviewevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(interviewevent.FieldJobTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.InterviewType(); ok {
		_spec.SetField(interviewevent.FieldInterviewType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(interviewevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsTotal(); ok {
		_spec.SetField(interviewevent.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsTotal(); ok {
		_spec.AddField(interviewevent.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(interviewevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(interviewevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsSkipped(); ok {
		_spec.SetField(interviewevent.FieldQuestionsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsSkipped(); ok {
		_spec.AddField(interviewevent.FieldQuestionsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(interviewevent.FieldAverageScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(interviewevent.FieldAverageScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(interviewevent.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(interviewevent.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(interviewevent.FieldClassification, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewEventUpdateOne is the builder for updating a single InterviewEvent entity.
type InterviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewEventUpdateOne) SetSessionID(v string) *InterviewEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableSessionID(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *InterviewEventUpdateOne) SetAction(v string) *InterviewEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableAction(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *InterviewEventUpdateOne) SetJobTitle(v string) *InterviewEventUpdateOne {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableJobTitle(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// SetInterviewType sets the "interview_type" field.
func (_u *InterviewEventUpdateOne) SetInterviewType(v string) *InterviewEventUpdateOne {
	_u.mutation.SetInterviewType(v)
	return _u
}

// SetNillableInterviewType sets the "interview_type" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableInterviewType(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetInterviewType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *InterviewEventUpdateOne) SetDifficulty(v string) *InterviewEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableDifficulty(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionsTotal sets the "questions_total" field.
func (_u *InterviewEventUpdateOne) SetQuestionsTotal(v int) *InterviewEventUpdateOne {
	_u.mutation.ResetQuestionsTotal()
	_u.mutation.SetQuestionsTotal(v)
	return _u
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableQuestionsTotal(v *int) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetQuestionsTotal(*v)
	}
	return _u
}

// AddQuestionsTotal adds value to the "questions_total" field.
func (_u *InterviewEventUpdateOne) AddQuestionsTotal(v int) *InterviewEventUpdateOne {
	_u.mutation.AddQuestionsTotal(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *InterviewEventUpdateOne) SetQuestionsAnswered(v int) *InterviewEventUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableQuestionsAnswered(v *int) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *InterviewEventUpdateOne) AddQuestionsAnswered(v int) *InterviewEventUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetQuestionsSkipped sets the "questions_skipped" field.
func (_u *InterviewEventUpdateOne) SetQuestionsSkipped(v int) *InterviewEventUpdateOne {
	_u.mutation.ResetQuestionsSkipped()
	_u.mutation.SetQuestionsSkipped(v)
	return _u
}

// SetNillableQuestionsSkipped sets the "questions_skipped" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableQuestionsSkipped(v *int) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetQuestionsSkipped(*v)
	}
	return _u
}

// AddQuestionsSkipped adds value to the "questions_skipped" field.
func (_u *InterviewEventUpdateOne) AddQuestionsSkipped(v int) *InterviewEventUpdateOne {
	_u.mutation.AddQuestionsSkipped(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *InterviewEventUpdateOne) SetAverageScore(v int) *InterviewEventUpdateOne {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableAverageScore(v *int) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *InterviewEventUpdateOne) AddAverageScore(v int) *InterviewEventUpdateOne {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *InterviewEventUpdateOne) SetBestScore(v int) *InterviewEventUpdateOne {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableBestScore(v *int) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *InterviewEventUpdateOne) AddBestScore(v int) *InterviewEventUpdateOne {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *InterviewEventUpdateOne) SetClassification(v string) *InterviewEventUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *InterviewEventUpdateOne) SetNillableClassification(v *string) *InterviewEventUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// Mutation returns the InterviewEventMutation object of the builder.
func (_u *InterviewEventUpdateOne) Mutation() *InterviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterviewEventUpdate builder.
func (_u *InterviewEventUpdateOne) Where(ps ...predicate.InterviewEvent) *InterviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewEventUpdateOne) Select(field string, fields ...string) *InterviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterviewEvent entity.
func (_u *InterviewEventUpdateOne) Save(ctx context.Context) (*InterviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewEventUpdateOne) SaveX(ctx context.Context) *InterviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InterviewEventUpdateOne) sqlSave(ctx context.Context) (_node *InterviewEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(interviewevent.Table, interviewevent.Columns, sqlgraph.NewFieldSpec(interviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewevent.FieldID)
		for _, f := range fields {
			if !interviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interviewevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(interviewevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(interviewevent.FieldJobTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.InterviewType(); ok {
		_spec.SetField(interviewevent.FieldInterviewType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(interviewevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsTotal(); ok {
		_spec.SetField(interviewevent.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsTotal(); ok {
		_spec.AddField(interviewevent.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(interviewevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(interviewevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsSkipped(); ok {
		_spec.SetField(interviewevent.FieldQuestionsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsSkipped(); ok {
		_spec.AddField(interviewevent.FieldQuestionsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(interviewevent.FieldAverageScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(interviewevent.FieldAverageScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(interviewevent.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(interviewevent.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(interviewevent.FieldClassification, field.TypeString, value)
	}
	_node = &InterviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
