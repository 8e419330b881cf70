package reduce

import (
    "sync";

    "github.com/marekgalovic/tracebench/math";
)

// SumTraces computes the sum of traces of all matrices using numWorkers
// concurrently executing workers. Each worker iterates its own contiguous
// partition and writes a single accumulated sum into a dedicated result slot,
// so the accumulation phase needs no locks. The coordinator waits for every
// worker before reading any slot and then aggregates them sequentially.
func SumTraces(matrices []math.Matrix, numWorkers int) int64 {
    partitions := Partitions(len(matrices), numWorkers)
    partials := make([]int64, len(partitions))

    wg := &sync.WaitGroup{}
    for k, partition := range partitions {
        wg.Add(1)
        go func(slot int, p Partition) {
            defer wg.Done()

            var sum int64
            for i := p.Start; i < p.End; i++ {
                sum += math.Trace(matrices[i])
            }
            partials[slot] = sum
        }(k, partition)
    }
    wg.Wait()

    var total int64
    for _, partial := range partials {
        total += partial
    }
    return total
}
