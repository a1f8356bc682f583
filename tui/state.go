package tui

type state int

const (
	loadingState state = iota
	errorState
	sourcesState
	searchState
	showsState
	categoriesState
	channelsState
	showState
)
