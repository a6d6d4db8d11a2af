package synth

import (
	"churnscope/internal/domain/customer"
	"churnscope/internal/domain/ticket"
)

// GenerateSupportTickets produces tickets for a without-replacement sample of
// customers. Per-customer counts follow Poisson(AvgTicketsPerCustomer) capped
// at MaxTicketsPerCustomer; a zero draw skips the customer. Resolution time
// and satisfaction score exist only on terminal tickets, correlated with
// priority and resolution speed.
func GenerateSupportTickets(r *Rand, customers []*customer.Customer, p Params) []*ticket.Ticket {
	sampled := Sample(r, customers, p.TicketCustomerLimit)

	tickets := make([]*ticket.Ticket, 0, len(sampled)*int(p.AvgTicketsPerCustomer))
	seq := 1

	for _, c := range sampled {
		numTickets := r.Poisson(p.AvgTicketsPerCustomer)
		if numTickets == 0 {
			continue
		}
		if numTickets > p.MaxTicketsPerCustomer {
			numTickets = p.MaxTicketsPerCustomer
		}

		for i := 0; i < numTickets; i++ {
			daysSinceSignup := DaysBetween(c.SignupDate, p.WindowEnd)
			if daysSinceSignup <= 0 {
				continue
			}

			created := c.SignupDate.AddDate(0, 0, r.IntBetween(1, daysSinceSignup))
			category := Choice(r, ticketCategories)
			priority := WeightedChoice(r, ticketPriorityWeights)
			status := WeightedChoice(r, ticketStatusWeights)
			text := Choice(r, ticketTemplates[category])

			var resolution, satisfaction *int
			if status.Terminal() {
				hours := int(float64(priorityBaseHours[priority]) * r.Uniform(0.5, 2.0))
				resolution = &hours

				var score int
				switch {
				case priority == ticket.PriorityUrgent && hours <= 4:
					score = Choice(r, satisfactionFastUrgent)
				case hours > 72:
					score = Choice(r, satisfactionSlow)
				default:
					score = Choice(r, satisfactionMid)
				}
				satisfaction = &score
			}

			tickets = append(tickets, &ticket.Ticket{
				ID:                  ticket.FormatID(seq),
				CustomerID:          c.ID,
				CreatedDate:         created,
				Category:            category,
				Priority:            priority,
				Status:              status,
				ResolutionTimeHours: resolution,
				SatisfactionScore:   satisfaction,
				TicketText:          text,
			})
			seq++
		}
	}

	return tickets
}
