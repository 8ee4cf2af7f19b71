package cart

// AddTicketRequest is the optional body of the add-to-cart endpoint.
// An absent body means a single ticket.
type AddTicketRequest struct {
	Quantity int `json:"quantity" binding:"omitempty,min=1"`
}
