// Command gauss-jordan is an interactive console calculator: it reads a
// rows×cols matrix of float64 values, prints it, reduces it to reduced
// row-echelon form and prints the result.
//
// All input validation lives here — the library packages only ever see a
// fully populated matrix of finite values. Malformed input is recovered by
// reprompting, never surfaced as a failure; the program always terminates
// with a printed result, even for degenerate shapes.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/rkabealo/linear-algebra/matrix"
	"github.com/rkabealo/linear-algebra/render"
	"github.com/rkabealo/linear-algebra/rref"
)

var epsilon = flag.Float64("epsilon", rref.DefaultEpsilon,
	"absolute tolerance below which an entry is treated as zero (and within which a pivot counts as 1)")

func printWelcomeBanner() {
	fmt.Println("*************************************************************")
	fmt.Println("*                                                           *")
	fmt.Println("*   Welcome to the Gauss-Jordan Elimination Calculator!     *")
	fmt.Println("*                                                           *")
	fmt.Println("*************************************************************")
	fmt.Println()
}

// readNonNegativeInt prompts until the next whitespace-separated token
// parses as a non-negative integer.
func readNonNegativeInt(prompt string, words *bufio.Scanner) int {
	for {
		fmt.Print("Enter " + prompt)
		if !words.Scan() {
			log.Fatal("input ended before a value was read")
		}
		n, err := strconv.Atoi(words.Text())
		if err != nil {
			fmt.Println("Invalid input for rows. Must be positive INTEGER. Try again.")
			continue
		}
		if n < 0 {
			fmt.Println("Invalid input for rows. Must be POSITIVE integer. Try again.")
			continue
		}

		return n
	}
}

// readFloat prompts until the next token parses as a finite float64.
// NaN and ±Inf parse fine but violate the store's numeric policy, so they
// reprompt like any other malformed token.
func readFloat(words *bufio.Scanner) float64 {
	for {
		if !words.Scan() {
			log.Fatal("input ended before a value was read")
		}
		v, err := strconv.ParseFloat(words.Text(), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fmt.Println("Invalid input for rows. Must be a double. Try again.")
			continue
		}

		return v
	}
}

func main() {
	flag.Parse()

	words := bufio.NewScanner(os.Stdin)
	words.Split(bufio.ScanWords)

	printWelcomeBanner()

	rows := readNonNegativeInt("# of rows in the matrix: ", words)
	cols := readNonNegativeInt("# of columns in the matrix: ", words)

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		log.Fatalf("allocate %dx%d matrix: %v", rows, cols, err)
	}

	// Populate row by row. No elements are read when cols == 0, so a 1×0
	// matrix never blocks on input (0×1 and 0×0 skip the outer loop).
	for i := 0; i < rows && cols != 0; i++ {
		fmt.Printf("Enter %d elements for row %d: ", cols, i)
		for j := 0; j < cols; j++ {
			if err := m.Set(i, j, readFloat(words)); err != nil {
				log.Fatalf("set element (%d,%d): %v", i, j, err)
			}
		}
	}

	fmt.Println("The original matrix: ")
	if err := render.Fprint(os.Stdout, m); err != nil {
		log.Fatalf("print matrix: %v", err)
	}

	if err := rref.Reduce(m, rref.WithEpsilon(*epsilon)); err != nil {
		log.Fatalf("reduce matrix: %v", err)
	}

	fmt.Println("The row reduced matrix: ")
	if err := render.Fprint(os.Stdout, m); err != nil {
		log.Fatalf("print matrix: %v", err)
	}
}
