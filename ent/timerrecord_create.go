// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akshad/studyquest/ent/timerrecord"
)

// TimerRecordCreate is the builder for creating a TimerRecord entity.
type TimerRecordCreate struct {
	config
	mutation *TimerRecordMutation
	hooks    []Hook
}

// SetSlot sets the "slot" field.
func (_c *TimerRecordCreate) SetSlot(v string) *TimerRecordCreate {
	_c.mutation.SetSlot(v)
	return _c
}

// SetData sets the "data" field.
func (_c *TimerRecordCreate) SetData(v map[string]interface{}) *TimerRecordCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetToken sets the "token" field.
func (_c *TimerRecordCreate) SetToken(v int64) *TimerRecordCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_c *TimerRecordCreate) SetNillableToken(v *int64) *TimerRecordCreate {
	if v != nil {
		_c.SetToken(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TimerRecordCreate) SetUpdatedAt(v time.Time) *TimerRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TimerRecordCreate) SetNillableUpdatedAt(v *time.Time) *TimerRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the TimerRecordMutation object of the builder.
func (_c *TimerRecordCreate) Mutation() *TimerRecordMutation {
	return _c.mutation
}

// Save creates the TimerRecord in the database.
func (_c *TimerRecordCreate) Save(ctx context.Context) (*TimerRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TimerRecordCreate) SaveX(ctx context.Context) *TimerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimerRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimerRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TimerRecordCreate) defaults() {
	if _, ok := _c.mutation.Token(); !ok {
		v := timerrecord.DefaultToken
		_c.mutation.SetToken(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := timerrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TimerRecordCreate) check() error {
	if _, ok := _c.mutation.Slot(); !ok {
		return &ValidationError{Name: "slot", err: errors.New(`ent: missing required field "TimerRecord.slot"`)}
	}
	if v, ok := _c.mutation.Slot(); ok {
		if err := timerrecord.SlotValidator(v); err != nil {
			return &ValidationError{Name: "slot", err: fmt.Errorf(`ent: validator failed for field "TimerRecord.slot": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "TimerRecord.data"`)}
	}
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "TimerRecord.token"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TimerRecord.updated_at"`)}
	}
	return nil
}

func (_c *TimerRecordCreate) sqlSave(ctx context.Context) (*TimerRecord, error) {
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

func (_c *TimerRecordCreate) createSpec() (*TimerRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &TimerRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(timerrecord.Table, sqlgraph.NewFieldSpec(timerrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Slot(); ok {
		_spec.SetField(timerrecord.FieldSlot, field.TypeString, value)
		_node.Slot = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(timerrecord.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(timerrecord.FieldToken, field.TypeInt64, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(timerrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TimerRecordCreateBulk is the builder for creating many TimerRecord entities in bulk.
type TimerRecordCreateBulk struct {
	config
	err      error
	builders []*TimerRecordCreate
}

// Save creates the TimerRecord entities in the database.
func (_c *TimerRecordCreateBulk) Save(ctx context.Context) ([]*TimerRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TimerRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimerRecordMutation)
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
func (_c *TimerRecordCreateBulk) SaveX(ctx context.Context) []*TimerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimerRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimerRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
