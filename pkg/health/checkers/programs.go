package checkers

import (
	"context"
	"errors"
)

// Counter reports how many items a component holds.
type Counter interface {
	Len() int
}

// ProgramsChecker fails while the program catalog is empty.
type ProgramsChecker struct {
	catalog Counter
}

func NewProgramsChecker(catalog Counter) *ProgramsChecker {
	return &ProgramsChecker{catalog: catalog}
}

func (c *ProgramsChecker) Name() string { return "programs" }

func (c *ProgramsChecker) Check(context.Context) error {
	if c.catalog == nil || c.catalog.Len() == 0 {
		return errors.New("no programs loaded")
	}
	return nil
}
