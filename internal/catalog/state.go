package catalog

// ViewState is everything the console remembers between events besides the
// product data itself.
type ViewState struct {
	CurrentPage      int
	ItemsPerPage     int
	Sort             SortState
	SearchTerm       string
	CurrentProductID int64
}

func NewViewState(itemsPerPage int) ViewState {
	return ViewState{
		CurrentPage:  1,
		ItemsPerPage: itemsPerPage,
	}
}
