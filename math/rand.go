package math

import (
    "math/rand";
)

func RandomUniformInt(min, max int64) int64 {
    return min + rand.Int63n(max - min + 1)
}

func RandomUniformMatrix(size int, min, max int64) Matrix {
    m := NewMatrix(size)
    for i := 0; i < size; i++ {
        for j := 0; j < size; j++ {
            m[i][j] = RandomUniformInt(min, max)
        }
    }
    return m
}
