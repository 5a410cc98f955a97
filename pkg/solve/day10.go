package solve

import (
	"context"
	"math/big"
	"strconv"

	"github.com/lance6716/aoc-circuits/pkg/parse"
	"github.com/pingcap/errors"
)

// day10Part1 sums the fewest button presses that bring every machine's
// indicator lights into the wanted pattern.
func day10Part1(ctx context.Context, input string, _ Params) (string, error) {
	machines, err := parse.Machines(input)
	if err != nil {
		return "", errors.Trace(err)
	}
	total := 0
	for i, m := range machines {
		if err = ctx.Err(); err != nil {
			return "", errors.Trace(err)
		}
		n, ok := fewestToggles(m)
		if !ok {
			return "", errors.Errorf("machine %d: lights can't be configured", i+1)
		}
		total += n
	}
	return strconv.Itoa(total), nil
}

// fewestToggles searches breadth-first over light states. Pressing a button
// twice cancels out, so the state space is every light subset.
func fewestToggles(m parse.Machine) (int, bool) {
	var target uint64
	for i, on := range m.Lights {
		if on {
			target |= 1 << i
		}
	}
	masks := make([]uint64, len(m.Buttons))
	for i, b := range m.Buttons {
		for _, light := range b {
			masks[i] ^= 1 << light
		}
	}

	dist := map[uint64]int{0: 0}
	queue := []uint64{0}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == target {
			return dist[cur], true
		}
		for _, mask := range masks {
			next := cur ^ mask
			if _, seen := dist[next]; !seen {
				dist[next] = dist[cur] + 1
				queue = append(queue, next)
			}
		}
	}
	return 0, false
}

// day10Part2 sums the fewest button presses that raise every machine's
// counters exactly to their joltage.
func day10Part2(ctx context.Context, input string, _ Params) (string, error) {
	machines, err := parse.Machines(input)
	if err != nil {
		return "", errors.Trace(err)
	}
	total := 0
	for i, m := range machines {
		if err = ctx.Err(); err != nil {
			return "", errors.Trace(err)
		}
		n, ok := fewestPresses(m)
		if !ok {
			return "", errors.Errorf("machine %d: joltage can't be reached", i+1)
		}
		total += n
	}
	return strconv.Itoa(total), nil
}

// fewestPresses solves min sum(x) subject to A x = joltage, x >= 0 integer,
// where A[counter][button] is 1 when the button raises the counter. The
// system is brought into reduced row echelon form; the free buttons are then
// enumerated within their bounds and the pivot buttons follow from them.
func fewestPresses(m parse.Machine) (int, bool) {
	rows, cols := len(m.Joltage), len(m.Buttons)
	a := make([][]*big.Rat, rows)
	for r := range a {
		a[r] = make([]*big.Rat, cols+1)
		for c := range a[r] {
			a[r][c] = new(big.Rat)
		}
		a[r][cols].SetInt64(int64(m.Joltage[r]))
	}
	for c, b := range m.Buttons {
		for _, counter := range b {
			a[counter][c].SetInt64(1)
		}
	}

	var pivots []int
	isPivot := make([]bool, cols)
	rank := 0
	tmp := new(big.Rat)
	for c := 0; c < cols && rank < rows; c++ {
		pr := -1
		for r := rank; r < rows; r++ {
			if a[r][c].Sign() != 0 {
				pr = r
				break
			}
		}
		if pr == -1 {
			continue
		}
		a[rank], a[pr] = a[pr], a[rank]
		inv := new(big.Rat).Inv(a[rank][c])
		for k := range a[rank] {
			a[rank][k].Mul(a[rank][k], inv)
		}
		for r := 0; r < rows; r++ {
			if r == rank || a[r][c].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(a[r][c])
			for k := range a[r] {
				a[r][k].Sub(a[r][k], tmp.Mul(f, a[rank][k]))
			}
		}
		pivots = append(pivots, c)
		isPivot[c] = true
		rank++
	}
	for r := rank; r < rows; r++ {
		if a[r][cols].Sign() != 0 {
			return 0, false
		}
	}

	var free []int
	var bounds []int
	for c := 0; c < cols; c++ {
		if isPivot[c] {
			continue
		}
		// a button can't be pressed more often than its smallest counter allows
		bound := 0
		for i, counter := range m.Buttons[c] {
			if i == 0 || m.Joltage[counter] < bound {
				bound = m.Joltage[counter]
			}
		}
		free = append(free, c)
		bounds = append(bounds, bound)
	}

	best, found := 0, false
	values := make([]int, len(free))
	v := new(big.Rat)
	for {
		sum := 0
		for _, x := range values {
			sum += x
		}
		ok := true
		for r := range pivots {
			v.Set(a[r][cols])
			for i, fc := range free {
				if values[i] != 0 {
					v.Sub(v, tmp.Mul(a[r][fc], new(big.Rat).SetInt64(int64(values[i]))))
				}
			}
			if v.Sign() < 0 || !v.IsInt() {
				ok = false
				break
			}
			sum += int(v.Num().Int64())
		}
		if ok && (!found || sum < best) {
			best, found = sum, true
		}

		// advance the free variables like an odometer
		i := 0
		for ; i < len(values); i++ {
			if values[i] < bounds[i] {
				values[i]++
				break
			}
			values[i] = 0
		}
		if i == len(values) {
			return best, found
		}
	}
}
