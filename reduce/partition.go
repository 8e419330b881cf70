package reduce

// Partition is a half-open index range [Start, End) assigned to one worker.
type Partition struct {
    Start int
    End int
}

func (p Partition) Len() int {
    return p.End - p.Start
}

// Partitions splits [0, total) into numWorkers contiguous ranges of near-equal
// size. The last worker absorbs the remainder of the integer division so the
// ranges cover the full interval with no gaps and no overlaps. A worker count
// greater than total is clamped to total so no partition is ever empty.
func Partitions(total, numWorkers int) []Partition {
    if numWorkers < 1 {
        panic("Num workers has to be >= 1")
    }
    if total == 0 {
        return nil
    }
    if numWorkers > total {
        numWorkers = total
    }

    perWorker := int(total / numWorkers)
    partitions := make([]Partition, numWorkers)
    for k := 0; k < numWorkers; k++ {
        partitions[k] = Partition{Start: k * perWorker, End: (k + 1) * perWorker}
    }
    partitions[numWorkers - 1].End = total

    return partitions
}
