package console

import (
	"errors"
	"strings"

	"churchsite/internal/repository"

	"gorm.io/gorm"
)

// Descriptor declares how one record type appears in the staff console:
// which columns text search covers, which fields can filter the list, and
// any bulk actions. One generic handler set interprets the table of
// descriptors; there is no per-entity console code.
type Descriptor struct {
	Key           string
	Label         string
	SearchColumns []string
	FilterFields  []string
	DefaultOrder  string
	New           func() interface{}
	NewSlice      func() interface{}
	BulkActions   map[string]BulkAction
	// BeforeSave runs on create and update, e.g. to derive a blog slug or
	// reject an unknown prayer status. staffID is the signed-in console user.
	BeforeSave func(db *gorm.DB, record interface{}, staffID uint) error
}

type BulkAction func(db *gorm.DB, ids []uint) error

var (
	ErrUnknownEntity = errors.New("unknown entity")
	ErrUnknownAction = errors.New("unknown action")
)

// Console executes descriptor-driven CRUD against the database.
type Console struct {
	db       *gorm.DB
	entities map[string]*Descriptor
}

func New(db *gorm.DB) *Console {
	c := &Console{db: db, entities: map[string]*Descriptor{}}
	for _, d := range registry() {
		c.entities[d.Key] = d
	}
	return c
}

func (c *Console) Descriptor(key string) (*Descriptor, error) {
	d, ok := c.entities[key]
	if !ok {
		return nil, ErrUnknownEntity
	}
	return d, nil
}

// Keys lists the registered entity keys for the console index.
func (c *Console) Keys() []string {
	keys := make([]string, 0, len(c.entities))
	for _, d := range registry() {
		keys = append(keys, d.Key)
	}
	return keys
}

// List applies text search over the descriptor's search columns and equality
// filters over its filter fields, then paginates.
func (c *Console) List(d *Descriptor, q string, filters map[string]string, page, limit int) (interface{}, int64, error) {
	tx := c.db.Model(d.New())
	if q = strings.TrimSpace(q); q != "" {
		pattern := "%" + repository.EscapeLike(strings.ToLower(q)) + "%"
		clauses := make([]string, len(d.SearchColumns))
		args := make([]interface{}, len(d.SearchColumns))
		for i, col := range d.SearchColumns {
			clauses[i] = "LOWER(" + col + ") LIKE ? ESCAPE '!'"
			args[i] = pattern
		}
		tx = tx.Where(strings.Join(clauses, " OR "), args...)
	}
	for _, field := range d.FilterFields {
		if v, ok := filters[field]; ok && v != "" {
			tx = tx.Where(field+" = ?", filterValue(v))
		}
	}
	var total int64
	tx.Count(&total)
	list := d.NewSlice()
	err := tx.Order(d.DefaultOrder).Limit(limit).Offset((page - 1) * limit).Find(list).Error
	return list, total, err
}

func (c *Console) Get(d *Descriptor, id uint) (interface{}, error) {
	rec := d.New()
	if err := c.db.First(rec, id).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *Console) Create(d *Descriptor, record interface{}, staffID uint) error {
	if d.BeforeSave != nil {
		if err := d.BeforeSave(c.db, record, staffID); err != nil {
			return err
		}
	}
	return c.db.Create(record).Error
}

// Save persists a record previously loaded with Get and mutated by the
// caller, so untouched fields keep their stored values.
func (c *Console) Save(d *Descriptor, record interface{}, staffID uint) error {
	if d.BeforeSave != nil {
		if err := d.BeforeSave(c.db, record, staffID); err != nil {
			return err
		}
	}
	return c.db.Save(record).Error
}

func (c *Console) Delete(d *Descriptor, id uint) error {
	res := c.db.Delete(d.New(), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (c *Console) RunBulk(d *Descriptor, action string, ids []uint) error {
	fn, ok := d.BulkActions[action]
	if !ok {
		return ErrUnknownAction
	}
	if len(ids) == 0 {
		return nil
	}
	return fn(c.db, ids)
}

func filterValue(v string) interface{} {
	switch strings.ToLower(v) {
	case "true":
		return true
	case "false":
		return false
	}
	return v
}
