package parallel

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// SplitRows divides [y0, y1) into at most n contiguous bands of at least
// minRows rows each. Earlier bands take the remainder rows.
func SplitRows(y0, y1, n, minRows int) []Band {
	rows := y1 - y0
	if rows <= 0 {
		return nil
	}
	minRows = max(minRows, 1)
	n = max(min(n, rows/minRows), 1)

	bands := make([]Band, 0, n)
	size, extra := rows/n, rows%n
	y := y0
	for i := range n {
		h := size
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}

// Rows calls fn once per band of [y0, y1). With a nil pool, or when the range
// yields a single band, fn runs on the calling goroutine.
func Rows(p *WorkerPool, y0, y1, minRows int, fn func(b Band)) {
	workers := 1
	if p != nil {
		workers = p.Workers()
	}
	bands := SplitRows(y0, y1, workers, minRows)
	if len(bands) <= 1 || p == nil {
		for _, b := range bands {
			fn(b)
		}
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b) }
	}
	p.ExecuteAll(work)
}
