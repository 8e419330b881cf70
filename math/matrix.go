package math

type Matrix [][]int64

func NewMatrix(size int) Matrix {
    m := make(Matrix, size)
    for i := 0; i < size; i++ {
        m[i] = make([]int64, size)
    }
    return m
}

func (m Matrix) Size() int {
    return len(m)
}

// Trace is the sum of elements on the main diagonal.
func Trace(m Matrix) int64 {
    assertSquare(&m)

    var trace int64
    for i := 0; i < len(m); i++ {
        trace += m[i][i]
    }
    return trace
}

func ScaledIdentityMatrix(size int, value int64) Matrix {
    m := NewMatrix(size)
    for i := 0; i < size; i++ {
        m[i][i] = value
    }
    return m
}
