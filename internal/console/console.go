// Package console runs the interactive route finder over stdin/stdout.
package console

//go:generate mockgen -source=console.go -destination=mock_console.go -package=console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sbilibin2017/gw-currency-router/internal/logger"
	"github.com/sbilibin2017/gw-currency-router/internal/models"
	"github.com/sbilibin2017/gw-currency-router/internal/pathfinder"
	"github.com/sbilibin2017/gw-currency-router/internal/services"
)

// RouteFinder defines the interface that the service must implement.
type RouteFinder interface {
	FindRoutes(ctx context.Context, fromCurrency, toCurrency string) (*models.RouteResult, error)
}

// Console reads start/goal pairs and prints the best and ranked conversion paths.
type Console struct {
	svc RouteFinder
	in  io.Reader
	out io.Writer

	lines   chan string
	scanErr error
}

func New(svc RouteFinder, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc: svc,
		in:  in,
		out: out,
	}
}

// readLines feeds input lines to c.lines so prompts can also wait on ctx.
// scanErr is set before the channel is closed.
func (c *Console) readLines() {
	defer close(c.lines)
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		c.lines <- scanner.Text()
	}
	c.scanErr = scanner.Err()
}

// Run loops until the user answers "no", input ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	if c.lines == nil {
		c.lines = make(chan string)
		go c.readLines()
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		from, ok := c.prompt(ctx, "Enter the start currency (e.g., USD): ")
		if !ok {
			return c.stopErr(ctx)
		}
		to, ok := c.prompt(ctx, "Enter the goal currency (e.g., JPY): ")
		if !ok {
			return c.stopErr(ctx)
		}
		from, to = strings.ToUpper(from), strings.ToUpper(to)

		result, err := c.svc.FindRoutes(ctx, from, to)
		switch {
		case errors.Is(err, services.ErrUnknownCurrency):
			fmt.Fprintln(c.out, "Invalid currency entered. Please try again.")
			continue
		case errors.Is(err, pathfinder.ErrNoPathFound):
			fmt.Fprintf(c.out, "No conversion path found from %s to %s.\n", from, to)
			continue
		case err != nil:
			logger.Log.Errorw("route query failed", "from", from, "to", to, "error", err)
			return err
		}

		c.printResult(result)

		again, ok := c.askAgain(ctx)
		if !ok {
			return c.stopErr(ctx)
		}
		if !again {
			return nil
		}
	}
}

// prompt returns false once input ends or ctx is cancelled.
func (c *Console) prompt(ctx context.Context, msg string) (string, bool) {
	fmt.Fprint(c.out, msg)
	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", false
	case line, ok := <-c.lines:
		if !ok {
			return "", false
		}
		return strings.TrimSpace(line), true
	}
}

// stopErr is nil on cancellation and the scanner error otherwise.
func (c *Console) stopErr(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	return c.scanErr
}

// askAgain repeats the question until it gets "yes" or "no".
func (c *Console) askAgain(ctx context.Context) (bool, bool) {
	for {
		answer, ok := c.prompt(ctx, "Do you want to find another conversion path? (yes/no): ")
		if !ok {
			return false, false
		}
		switch strings.ToLower(answer) {
		case "yes":
			return true, true
		case "no":
			return false, true
		}
	}
}

func (c *Console) printResult(result *models.RouteResult) {
	fmt.Fprintf(c.out, "A-STAR || Cheapest conversion path from %s to %s:\n", result.From, result.To)
	c.printEdges(result.Best)
	fmt.Fprintf(c.out, "Total cost: %.6f\n", result.Best.TotalCost)
	fmt.Fprintf(c.out, "Total effective conversion: %.6f\n\n", result.Best.ConvertedAmount)

	fmt.Fprintf(c.out, "All possible paths from %s to %s:\n", result.From, result.To)
	for i, rp := range result.Ranked {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, rp.Path)
		c.printEdges(rp)
		fmt.Fprintf(c.out, "Total cost: %.6f\n", rp.TotalCost)
		fmt.Fprintf(c.out, "Total effective conversion: %.6f %s from 1 %s\n\n", rp.ConvertedAmount, result.To, result.From)
	}
}

func (c *Console) printEdges(rp models.RankedPath) {
	for _, e := range rp.Edges {
		fmt.Fprintf(c.out, "%s -> %s (Effective Conversion: %.6f, Base Rate: %.6f, Volatility: %.2f%%, Tax: %.2f%%)\n",
			e.From, e.To, e.EffectiveCost, e.BaseRate, e.VolatilityPct, e.TaxPct)
	}
}
