package colorspace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// YIQ / YUV 的正向係數；逆矩陣在包初始化時精確求出，保證往返一致
var (
	yiqForward = mat.NewDense(3, 3, []float64{
		0.29895808, 0.58660979, 0.11443213,
		0.59590296, -0.27405705, -0.32184591,
		0.21133576, -0.52263517, 0.31129940,
	})
	yuvForward = mat.NewDense(3, 3, []float64{
		0.29900, 0.58700, 0.11400,
		-0.14713, -0.28886, 0.43600,
		0.61500, -0.51499, -0.10001,
	})

	yiqInverse = mustInverse("YIQ", yiqForward)
	yuvInverse = mustInverse("YUV", yuvForward)
)

func mustInverse(name string, m *mat.Dense) *mat.Dense {
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		panic(fmt.Sprintf("%s 轉換矩陣不可逆: %v", name, err))
	}
	return &inv
}

func applyMatrix(m mat.Matrix, a, b, c float64) (float64, float64, float64) {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{a, b, c}))
	return out.AtVec(0), out.AtVec(1), out.AtVec(2)
}
