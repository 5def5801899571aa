// Package main demonstrates the lvmat/matrix container end to end.
//
// Scenario:
//
//	A 2×3 integer matrix grows by a row, is transposed, widened by a column
//	and transposed back, then trimmed with RemoveRow/RemoveColumn until a
//	2×2 block remains. That block goes through +=, -, × and *=. A 4×4 float
//	matrix then shows Minor, Cofactor, Determinant (Laplace expansion) and
//	scalar division.
//
// Usage:
//
//	matrixdemo [-verb %v] [-verify] [-script cases.yaml]
//
//	-verb    fmt verb used to render elements (e.g. %f for fixed six decimals)
//	-verify  cross-check every determinant with gonum's LU determinant
//	-script  run a YAML fixture suite and print a YAML report to stdout
//
// Complexity:
//   - Determinant of the 4×4 example: 4! leaf minors.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/katalvlaran/lvmat/converters"
	"github.com/katalvlaran/lvmat/fixture"
	"github.com/katalvlaran/lvmat/matrix"
)

type config struct {
	verb   string
	verify bool
	script string
}

// validate rejects flag values that would make the matrix package panic.
func (c config) validate() error {
	if err := matrix.ValidateVerb(c.verb); err != nil {
		return fmt.Errorf("-verb: %w", err)
	}

	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("matrixdemo: ")

	var cfg config
	flag.StringVar(&cfg.verb, "verb", matrix.DefaultVerb, "fmt verb used to render elements")
	flag.BoolVar(&cfg.verify, "verify", false, "cross-check determinants with gonum")
	flag.StringVar(&cfg.script, "script", "", "YAML fixture suite to run")
	flag.Parse()
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	if cfg.script != "" {
		if err := runScript(cfg.script); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := walkthrough(cfg); err != nil {
		log.Fatal(err)
	}
	if err := determinants(cfg); err != nil {
		log.Fatal(err)
	}
}

func runScript(path string) error {
	s, err := fixture.Load(path)
	if err != nil {
		return err
	}
	rep := fixture.RunSuite(s)
	if err = rep.Encode(os.Stdout); err != nil {
		return err
	}
	if rep.Failed > 0 {
		return fmt.Errorf("%d of %d cases failed", rep.Failed, rep.Failed+rep.Passed)
	}
	log.Printf("%d cases passed", rep.Passed)

	return nil
}

// walkthrough exercises resizing, indexing and the arithmetic operators on ints.
func walkthrough(cfg config) error {
	show := func(label string, m interface{ Render(...matrix.RenderOption) string }) {
		fmt.Printf("%s:\n%s\n\n", label, m.Render(matrix.WithVerb(cfg.verb)))
	}

	m1, err := matrix.FromRows([][]int{{1, 2, 5}, {3, 4, 6}})
	if err != nil {
		return err
	}
	show("m1", m1)

	m2, err := matrix.NewMatrix[float64](1, 1)
	if err != nil {
		return err
	}
	show("m2 (1x1 zero)", m2)

	m3, err := matrix.NewMatrix[int64](2, 4)
	if err != nil {
		return err
	}
	show("m3 (2x4 zero)", m3)

	if err = m1.AddRow([]int{2, 5, 7}); err != nil {
		return err
	}
	show("m1 after AddRow", m1)

	second, err := m1.Row(1)
	if err != nil {
		return err
	}
	fmt.Println("m1[1] =", second)
	v, err := m1.At(1, 2)
	if err != nil {
		return err
	}
	fmt.Println("m1[1][2] =", v)

	n := matrix.Transpose(m1)
	show("n = m1ᵀ", n)
	if err = n.AddColumn([]int{3, 13, 21}); err != nil {
		return err
	}
	show("n after AddColumn", n)
	n = matrix.Transpose(n)
	show("n = nᵀ", n)

	row, err := n.Row(1)
	if err != nil {
		return err
	}
	col, err := n.Column(1)
	if err != nil {
		return err
	}
	fmt.Println("n.Row(1) =", row)
	fmt.Println("n.Column(1) =", col)

	for _, step := range []struct {
		label string
		fn    func() error
	}{
		{"n after RemoveRow(1)", func() error { return n.RemoveRow(1) }},
		{"n after RemoveColumn(2)", func() error { return n.RemoveColumn(2) }},
		{"n after RemoveRow(2)", func() error { return n.RemoveRow(2) }},
	} {
		if err = step.fn(); err != nil {
			return err
		}
		show(step.label, n)
	}

	fmt.Println("n == {{-1,1,4},{2,5,4}}:", n.Equal(matrix.MustFromRows([][]int{{-1, 1, 4}, {2, 5, 4}})))

	if err = n.AddAssign(matrix.MustFromRows([][]int{{2, 2}, {3, 3}})); err != nil {
		return err
	}
	show("n += {{2,2},{3,3}}", n)

	n2, err := matrix.Sub(n, matrix.MustFromRows([][]int{{4, 4}, {3, 3}}))
	if err != nil {
		return err
	}
	show("n2 = n - {{4,4},{3,3}}", n2)

	p, err := matrix.Mul(n, n2)
	if err != nil {
		return err
	}
	show("n * n2", p)

	q := matrix.MustFromRows([][]int{{2, 0}, {0, 2}})
	if err = q.MulAssign(matrix.MustFromRows([][]int{{-1, -1}, {-1, -1}})); err != nil {
		return err
	}
	show("{{2,0},{0,2}} *= {{-1,-1},{-1,-1}}", q)

	return nil
}

// determinants exercises minor, cofactor, determinant and scalar division on floats.
func determinants(cfg config) error {
	m, err := matrix.FromRows([][]float64{{1, 2, 3, 4}, {5, 6, 0, 8}, {9, 10, 11, 11}, {13, 14, 15, 17}})
	if err != nil {
		return err
	}
	opt := matrix.WithVerb(cfg.verb)
	fmt.Printf("m:\n%s\n\n", m.Render(opt))

	mn, err := matrix.Minor(m, 0, 1)
	if err != nil {
		return err
	}
	fmt.Printf("minor(0,1):\n%s\n\n", mn.Render(opt))

	cf, err := matrix.Cofactor(m, 0, 1)
	if err != nil {
		return err
	}
	fmt.Printf("cofactor(0,1):\n%s\n\n", cf.Render(opt))

	d, err := matrix.Determinant(m)
	if err != nil {
		return err
	}
	fmt.Println("det(m) =", d)

	if cfg.verify {
		ref, err := converters.GonumDet(m)
		if err != nil {
			return err
		}
		if math.Abs(ref-d) > 1e-9*math.Max(1, math.Abs(ref)) {
			return fmt.Errorf("determinant %v disagrees with gonum %v", d, ref)
		}
		log.Printf("determinant verified against gonum (%v)", ref)
	}

	half, err := matrix.Div(m, 2)
	if err != nil {
		return err
	}
	fmt.Printf("m / 2:\n%s\n", half.Render(opt))

	return nil
}
