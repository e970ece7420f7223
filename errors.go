package roster

import "fmt"

type LockedIndexError struct{}

func (e LockedIndexError) Error() string {
	return "index is currently locked"
}

type GroupLimitError struct {
	Group string
}

func (e GroupLimitError) Error() string {
	return fmt.Sprintf("group %q has no free query bit (limit %d)", e.Group, MaxGroups)
}
