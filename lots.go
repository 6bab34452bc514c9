package folio

// lot is a single purchase of an asset, the unit of FIFO cost matching.
type lot struct {
	Date     Date
	Quantity Quantity
	Cost     Money // total cost of the lot, fees included
}

type lots []lot

// costOfSelling returns the FIFO cost basis of selling the given quantity:
// oldest lots are consumed first, the last one possibly partially.
func (l lots) costOfSelling(quantity Quantity) Money {
	var cost Money
	for _, current := range l {
		if current.Quantity.GreaterThan(quantity) {
			// partial sale from this lot
			return cost.Add(current.Cost.Mul(quantity).Div(current.Quantity))
		}
		cost = cost.Add(current.Cost)
		quantity = quantity.Sub(current.Quantity)
	}
	return cost
}

// sell consumes the given quantity from the lot queue, FIFO.
func (l lots) sell(quantity Quantity) lots {
	var remaining lots
	for _, current := range l {
		if quantity.IsZero() {
			remaining = append(remaining, current)
			continue
		}
		if current.Quantity.GreaterThan(quantity) {
			sold := current.Cost.Mul(quantity).Div(current.Quantity)
			remaining = append(remaining, lot{
				Date:     current.Date,
				Quantity: current.Quantity.Sub(quantity),
				Cost:     current.Cost.Sub(sold),
			})
			quantity = Q(0)
			continue
		}
		quantity = quantity.Sub(current.Quantity)
	}
	return remaining
}
