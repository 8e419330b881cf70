package tracebench

type Config struct {
    Generator GeneratorConfig
    Benchmark BenchmarkConfig
}

type GeneratorConfig struct {
    NumMatrices int
    MatrixSize int
    MinValue int64
    MaxValue int64
}

type BenchmarkConfig struct {
    WorkerCounts []int
}

func NewConfig() *Config {
    return &Config {
        Generator: GeneratorConfig {
            NumMatrices: 1000,
            MatrixSize: 50,
            MinValue: -100,
            MaxValue: 100,
        },
        Benchmark: BenchmarkConfig {
            WorkerCounts: []int{1, 2, 4, 8},
        },
    }
}
