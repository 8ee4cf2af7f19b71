package transactions

type CreateTransactionRequest struct {
	Tickets []TransactionItemRequest `json:"tickets" binding:"required,min=1,dive"`
}

type TransactionItemRequest struct {
	TicketID    string   `json:"ticketId" binding:"required,uuid"`
	EventID     string   `json:"eventId" binding:"omitempty,uuid"`
	Count       int      `json:"count" binding:"required,min=1"`
	SeatNumbers []string `json:"seatNumbers,omitempty"`
}
