package leavetype

type LeaveTypeRequest struct {
	Name         string `json:"name" binding:"required"`
	NumberOfDays int    `json:"number_of_days" binding:"required"`
}

type LeaveTypeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NumberOfDays int    `json:"number_of_days"`
}

type NameExistsResponse struct {
	Exists bool `json:"exists"`
}
