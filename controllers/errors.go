package controllers

var (
	ErrUnknownTab   = &CustomError{"Unknown status tab"}
	ErrItemsNotDone = &CustomError{"All items must be done before completing the ticket"}
	ErrUnknownRole  = &CustomError{"Unknown display role"}
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}
