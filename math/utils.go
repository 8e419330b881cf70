package math

func assertSquare(m *Matrix) {
    for _, row := range *m {
        if len(row) != len(*m) {
            panic("Matrix is not square.")
        }
    }
}
