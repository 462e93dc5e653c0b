package apperror

import "errors"

var (
	ErrMalformedDataset = errors.New("malformed dataset")
	ErrEmptyDataset     = errors.New("dataset is empty")
	ErrEmptyTrainingSet = errors.New("training set is empty")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownStrategy  = errors.New("no strategy for difficulty")
	ErrModelNotFound    = errors.New("model not found")
)
