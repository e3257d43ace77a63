package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"chain-reaction/internal/config"
	"chain-reaction/internal/game"
	"chain-reaction/internal/session"
	"chain-reaction/internal/store"
)

// Terminal driver: the same core the server uses, played from stdin.
func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cfg := config.Load()
	sm := session.NewManager(store.NewMemoryStore(), cfg, nil)
	s, err := sm.NewSession(game.Red, game.ParseDifficulty(cfg.DefaultDifficulty), 1)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	for !s.GameOver {
		fmt.Printf("\nLevel %d, %s to move\n", s.Level, s.Current)
		printBoard(s)

		if s.LevelOver {
			last := s.LevelWinners[len(s.LevelWinners)-1]
			fmt.Printf("%s takes the level. Enter for next level, u to undo.\n", last)
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) == "u" {
				sm.Undo(s)
				continue
			}
			if err := sm.NextLevel(s); err != nil {
				fmt.Println(err)
			}
			continue
		}

		if s.Current == s.Computer {
			time.Sleep(time.Duration(cfg.BotDelayMs) * time.Millisecond)
			mv, err := sm.BotMove(s)
			if err != nil {
				fmt.Println("bot cannot move:", err)
				break
			}
			fmt.Printf("bot plays %d %d\n", mv.Row, mv.Col)
			continue
		}

		fmt.Println("your move: row col (or u to undo, q to quit)")
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		fields := strings.Fields(line)
		switch {
		case len(fields) == 1 && fields[0] == "q":
			return
		case len(fields) == 1 && fields[0] == "u":
			// Twice: the bot's reply and the player's own move.
			sm.Undo(s)
			sm.Undo(s)
		case len(fields) == 2:
			row, err1 := strconv.Atoi(fields[0])
			col, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil {
				fmt.Println("numbers, please")
				continue
			}
			if err := sm.ApplyMove(s, s.Human, game.Move{Row: row, Col: col}); err != nil {
				fmt.Println("invalid move:", err)
			}
		default:
			fmt.Println("row col, or u, or q")
		}
	}

	if s.Winner != "" {
		fmt.Println("\n" + s.Winner)
	}
}

func printBoard(s *session.Session) {
	for r := 0; r < s.Board.Size; r++ {
		for c := 0; c < s.Board.Size; c++ {
			cell := s.Board.Cell(r, c)
			switch {
			case cell.Blocked:
				fmt.Print(" ## ")
			case cell.Dots == 0:
				fmt.Print(" .. ")
			default:
				mark := "r"
				if cell.Owner == game.Blue {
					mark = "b"
				}
				fmt.Printf(" %s%d ", mark, cell.Dots)
			}
		}
		fmt.Println()
	}
}
