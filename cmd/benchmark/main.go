package main

import (
    "time";
    "context";

    "github.com/marekgalovic/tracebench";

    log "github.com/sirupsen/logrus";
)

func main() {
    config := tracebench.NewConfig()

    log.Infof("Generating %d matrices of size %dx%d", config.Generator.NumMatrices, config.Generator.MatrixSize, config.Generator.MatrixSize)
    start := time.Now()
    matrices := tracebench.GenerateCollection(config.Generator)
    log.Infof("Collection generated: %s", time.Since(start))

    runner := tracebench.NewRunner(config, matrices, tracebench.NewConsoleReporter())
    if _, err := runner.Run(context.Background()); err != nil {
        log.Fatal(err)
    }
}
