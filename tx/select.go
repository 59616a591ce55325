package tx

// Select greedily accumulates unspent outputs, in the order supplied by
// the caller, until the running total covers target. No sorting and no
// coin-selection optimization: the ledger service's order is the spend
// order.
//
// When every output together still falls short, the full list is returned
// with total < target; the caller decides whether that is an error
// (Create rejects it before signing).
func Select(target int64, outputs []UnspentOutput) ([]UnspentOutput, int64) {
	var (
		selected []UnspentOutput
		total    int64
	)
	for _, out := range outputs {
		if total >= target {
			break
		}
		selected = append(selected, out)
		total += out.Amount
	}
	return selected, total
}
