package todo

import (
	"fmt"

	"github.com/Makepad-fr/mytodo/internal/model"
)

// FilterController holds the active filter and asks the store to recompute
// visibility when it changes. It never touches tasks itself.
type FilterController struct {
	store   *Store
	current model.Filter
}

func NewFilterController(store *Store) *FilterController {
	fc := &FilterController{store: store, current: model.FilterAll}
	store.recomputeVisibility(fc.current)
	return fc
}

func (fc *FilterController) Current() model.Filter { return fc.current }

func (fc *FilterController) Change(f model.Filter) error {
	if !f.Valid() {
		return fmt.Errorf("change filter: invalid value %d", int(f))
	}
	fc.current = f
	fc.store.recomputeVisibility(f)
	fc.store.emitFilter()
	return nil
}

func (fc *FilterController) Next() { _ = fc.Change(fc.current.Next()) }

func (fc *FilterController) Prev() { _ = fc.Change(fc.current.Prev()) }
