package folio

// lot is a single open purchase tranche awaiting consumption by later
// sells, used for FIFO cost basis calculations. The acquisition price is
// fixed at creation; only the remaining quantity shrinks.
type lot struct {
	remaining Quantity
	price     Money // acquisition unit price
}

// lotQueue is the FIFO queue of open lots for one instrument. Consumed
// lots are not physically removed: a front cursor advances over the
// backing slice instead, which keeps the full purchase history available
// and makes the invariants easy to state (remaining quantities are
// monotonically non-increasing, front only moves forward).
type lotQueue struct {
	open  []lot
	front int
}

// push appends a new lot at the back of the queue.
func (q *lotQueue) push(quantity Quantity, price Money) {
	q.open = append(q.open, lot{remaining: quantity, price: price})
}

// empty reports whether no lot quantity is left to consume.
func (q *lotQueue) empty() bool { return q.front >= len(q.open) }

// remaining returns the total quantity still held across open lots.
func (q *lotQueue) remaining() Quantity {
	total := Q(0)
	for _, l := range q.open[q.front:] {
		total = total.Add(l.remaining)
	}
	return total
}

// sell consumes lots from the front of the queue, oldest first, until
// quantity is exhausted or the queue runs dry. It returns the realized
// gain of the matched portion, quantity*(sellPrice-lotPrice) summed over
// matched lots, and the quantity that could not be matched against any
// lot. The unmatched remainder contributes no gain term; it is the
// caller's decision whether to surface it.
func (q *lotQueue) sell(quantity Quantity, sellPrice Money) (realized Money, unmatched Quantity) {
	for quantity.IsPositive() && !q.empty() {
		l := &q.open[q.front]
		matched := quantity.Min(l.remaining)

		realized = realized.Add(sellPrice.Sub(l.price).Mul(matched))

		l.remaining = l.remaining.Sub(matched)
		quantity = quantity.Sub(matched)
		if l.remaining.IsZero() {
			q.front++
		}
	}
	return realized, quantity
}
