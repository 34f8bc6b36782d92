package entity

// Page selects a window of a list ordered by the repository.
type Page struct {
	Skip  int
	Limit int
}
