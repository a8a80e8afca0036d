package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ListParams holds the pagination query parameters shared by list endpoints.
type ListParams struct {
	Page     int `form:"page,default=1" binding:"min=1,max=100000"`
	PageSize int `form:"page_size,default=20" binding:"min=1,max=100"`
}

// DateLayout is the wire format for calendar dates (check-in, check-out, payment date).
const DateLayout = "2006-01-02"
