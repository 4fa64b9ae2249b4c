package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/kvermeij/reversi/internal/reversi"
)

// printer shows game progress on the terminal. Notifications arrive
// synchronously because the bot delay is zero.
type printer struct {
	reversi.NopObserver
}

func (printer) MoveSkipped(player reversi.Disc) {
	fmt.Printf("%s has no moves and is skipped\n", player)
}

func (printer) GameOver(score reversi.Score) {
	fmt.Printf("game over: black %d - white %d", score.Black, score.White)
	if winner := score.Winner(); winner == reversi.Empty {
		fmt.Println(", draw")
	} else {
		fmt.Printf(", %s wins\n", winner)
	}
}

func printBoard(g *reversi.Game) {
	for _, line := range g.Board().ASCIIArtLines(g.LegalMoves()) {
		fmt.Println(line)
	}
	if !g.IsGameOver() {
		fmt.Printf("%s to move (turn %d)\n", g.Player(), g.Turn())
	}
}

func buildGame(botColor, botStrategy string, seed int64) (*reversi.Game, error) {
	opts := []reversi.Option{
		reversi.WithObserver(printer{}),
		reversi.WithRand(rand.New(rand.NewSource(seed))),
	}

	if botColor != "" {
		color, err := reversi.ParseDisc(botColor)
		if err != nil {
			return nil, err
		}

		strategy, err := reversi.ParseStrategy(botStrategy)
		if err != nil {
			return nil, err
		}

		opts = append(opts, reversi.WithBot(color, strategy))
	}

	return reversi.NewGame(opts...), nil
}

func main() {
	botColor := flag.String("bot", "", "bot color: black or white (empty for two humans)")
	botStrategy := flag.String("strategy", "random", "bot strategy: random, greedy or corner")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for the bot")
	flag.Parse()

	game, err := buildGame(*botColor, *botStrategy, *seed)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println("enter a field like d3, or one of: undo, redo, new, quit")
	printBoard(game)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch input {
		case "":
			continue
		case "quit", "exit":
			return
		case "new":
			game.Reset()
		case "undo":
			if !game.Undo() {
				fmt.Println("nothing to undo")
				continue
			}
		case "redo":
			if !game.Redo() {
				fmt.Println("nothing to redo")
				continue
			}
		default:
			coord, err := reversi.ParseCoord(input)
			if err != nil {
				fmt.Println(err)
				continue
			}

			if !game.Submit(coord) {
				fmt.Println("illegal move")
				continue
			}
		}

		printBoard(game)
	}
}
