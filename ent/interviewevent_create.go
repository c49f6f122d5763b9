// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/jobprep/ent/interviewevent"
)

// InterviewEventCreate is the builder for creating a InterviewEvent entity.
type InterviewEventCreate struct {
	config
	mutation *InterviewEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InterviewEventCreate) SetSequence(v int64) *InterviewEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InterviewEventCreate) SetTimestamp(v time.Time) *InterviewEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableTimestamp(v *time.Time) *InterviewEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *InterviewEventCreate) SetSessionID(v string) *InterviewEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *InterviewEventCreate) SetAction(v string) *InterviewEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetJobTitle sets the "job_title" field.
func (_c *InterviewEventCreate) SetJobTitle(v string) *InterviewEventCreate {
	_c.mutation.SetJobTitle(v)
	return _c
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableJobTitle(v *string) *InterviewEventCreate {
	if v != nil {
		_c.SetJobTitle(*v)
	}
	return _c
}

// SetInterviewType sets the "interview_type" field.
func (_c *InterviewEventCreate) SetInterviewType(v string) *InterviewEventCreate {
	_c.mutation.SetInterviewType(v)
	return _c
}

// SetNillableInterviewType sets the "interview_type" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableInterviewType(v *string) *InterviewEventCreate {
	if v != nil {
		_c.SetInterviewType(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *InterviewEventCreate) SetDifficulty(v string) *InterviewEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableDifficulty(v *string) *InterviewEventCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetQuestionsTotal sets the "questions_total" field.
func (_c *InterviewEventCreate) SetQuestionsTotal(v int) *InterviewEventCreate {
	_c.mutation.SetQuestionsTotal(v)
	return _c
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableQuestionsTotal(v *int) *InterviewEventCreate {
	if v != nil {
		_c.SetQuestionsTotal(*v)
	}
	return _c
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_c *InterviewEventCreate) SetQuestionsAnswered(v int) *InterviewEventCreate {
	_c.mutation.SetQuestionsAnswered(v)
	return _c
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableQuestionsAnswered(v *int) *InterviewEventCreate {
	if v != nil {
		_c.SetQuestionsAnswered(*v)
	}
	return _c
}

// SetQuestionsSkipped sets the "questions_skipped" field.
func (_c *InterviewEventCreate) SetQuestionsSkipped(v int) *InterviewEventCreate {
	_c.mutation.SetQuestionsSkipped(v)
	return _c
}

// SetNillableQuestionsSkipped sets the "questions_skipped" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableQuestionsSkipped(v *int) *InterviewEventCreate {
	if v != nil {
		_c.SetQuestionsSkipped(*v)
	}
	return _c
}

// SetAverageScore sets the "average_score" field.
func (_c *InterviewEventCreate) SetAverageScore(v int) *InterviewEventCreate {
	_c.mutation.SetAverageScore(v)
	return _c
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableAverageScore(v *int) *InterviewEventCreate {
	if v != nil {
		_c.SetAverageScore(*v)
	}
	return _c
}

// SetBestScore sets the "best_score" field.
func (_c *InterviewEventCreate) SetBestScore(v int) *InterviewEventCreate {
	_c.mutation.SetBestScore(v)
	return _c
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableBestScore(v *int) *InterviewEventCreate {
	if v != nil {
		_c.SetBestScore(*v)
	}
	return _c
}

// SetClassification sets the "classification" field.
func (_c *InterviewEventCreate) SetClassification(v string) *InterviewEventCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_c *InterviewEventCreate) SetNillableClassification(v *string) *InterviewEventCreate {
	if v != nil {
		_c.SetClassification(*v)
	}
	return _c
}

// Mutation returns the InterviewEventMutation object of the builder.
func (_c *InterviewEventCreate) Mutation() *InterviewEventMutation {
	return _c.mutation
}

// Save creates the InterviewEvent in the database.
func (_c *InterviewEventCreate) Save(ctx context.Context) (*InterviewEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewEventCreate) SaveX(ctx context.Context) *InterviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interviewevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.JobTitle(); !ok {
		v := interviewevent.DefaultJobTitle
		_c.mutation.SetJobTitle(v)
	}
	if _, ok := _c.mutation.InterviewType(); !ok {
		v := interviewevent.DefaultInterviewType
		_c.mutation.SetInterviewType(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := interviewevent.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.QuestionsTotal(); !ok {
		v := interviewevent.DefaultQuestionsTotal
		_c.mutation.SetQuestionsTotal(v)
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		v := interviewevent.DefaultQuestionsAnswered
		_c.mutation.SetQuestionsAnswered(v)
	}
	if _, ok := _c.mutation.QuestionsSkipped(); !ok {
		v := interviewevent.DefaultQuestionsSkipped
		_c.mutation.SetQuestionsSkipped(v)
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		v := interviewevent.DefaultAverageScore
		_c.mutation.SetAverageScore(v)
	}
	if _, ok := _c.mutation.BestScore(); !ok {
		v := interviewevent.DefaultBestScore
		_c.mutation.SetBestScore(v)
	}
	if _, ok := _c.mutation.Classification(); !ok {
		v := interviewevent.DefaultClassification
		_c.mutation.SetClassification(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InterviewEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InterviewEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "InterviewEvent.session_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "InterviewEvent.action"`)}
	}
	if _, ok := _c.mutation.JobTitle(); !ok {
		return &ValidationError{Name: "job_title", err: errors.New(`ent: missing required field "InterviewEvent.job_title"`)}
	}
	if _, ok := _c.mutation.InterviewType(); !ok {
		return &ValidationError{Name: "interview_type", err: errors.New(`ent: missing required field "InterviewEvent.interview_type"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "InterviewEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.QuestionsTotal(); !ok {
		return &ValidationError{Name: "questions_total", err: errors.New(`ent: missing required field "InterviewEvent.questions_total"`)}
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		return &ValidationError{Name: "questions_answered", err: errors.New(`ent: missing required field "InterviewEvent.questions_answered"`)}
	}
	if _, ok := _c.mutation.QuestionsSkipped(); !ok {
		return &ValidationError{Name: "questions_skipped", err: errors.New(`ent: missing required field "InterviewEvent.questions_skipped"`)}
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		return &ValidationError{Name: "average_score", err: errors.New(`ent: missing required field "InterviewEvent.average_score"`)}
	}
	if _, ok := _c.mutation.BestScore(); !ok {
		return &ValidationError{Name: "best_score", err: errors.New(`ent: missing required field "InterviewEvent.best_score"`)}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "InterviewEvent.classification"`)}
	}
	return nil
}

func (_c *InterviewEventCreate) sqlSave(ctx context.Context) (*InterviewEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterviewEventCreate) createSpec() (*InterviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InterviewEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interviewevent.Table, sqlgraph.NewFieldSpec(interviewevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interviewevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interviewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interviewevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(interviewevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.JobTitle(); ok {
		_spec.SetField(interviewevent.FieldJobTitle, field.TypeString, value)
		_node.JobTitle = value
	}
	if value, ok := _c.mutation.InterviewType(); ok {
		_spec.SetField(interviewevent.FieldInterviewType, field.TypeString, value)
		_node.InterviewType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(interviewevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.QuestionsTotal(); ok {
		_spec.SetField(interviewevent.FieldQuestionsTotal, field.TypeInt, value)
		_node.QuestionsTotal = value
	}
	if value, ok := _c.mutation.QuestionsAnswered(); ok {
		_spec.SetField(interviewevent.FieldQuestionsAnswered, field.TypeInt, value)
		_node.QuestionsAnswered = value
	}
	if value, ok := _c.mutation.QuestionsSkipped(); ok {
		_spec.SetField(interviewevent.FieldQuestionsSkipped, field.TypeInt, value)
		_node.QuestionsSkipped = value
	}
	if value, ok := _c.mutation.AverageScore(); ok {
		_spec.SetField(interviewevent.FieldAverageScore, field.TypeInt, value)
		_node.AverageScore = value
	}
	if value, ok := _c.mutation.BestScore(); ok {
		_spec.SetField(interviewevent.FieldBestScore, field.TypeInt, value)
		_node.BestScore = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(interviewevent.FieldClassification, field.TypeString, value)
		_node.Classification = value
	}
	return _node, _spec
}

// InterviewEventCreateBulk is the builder for creating many InterviewEvent entities in bulk.
type InterviewEventCreateBulk struct {
	config
	err      error
	builders []*InterviewEventCreate
}

// Save creates the InterviewEvent entities in the database.
func (_c *InterviewEventCreateBulk) Save(ctx context.Context) ([]*InterviewEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterviewEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InterviewEventCreateBulk) SaveX(ctx context.Context) []*InterviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
