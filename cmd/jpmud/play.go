package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/jp-mud/internal/entities"
	"github.com/KirkDiggler/jp-mud/internal/orchestrators/game"
	"github.com/KirkDiggler/jp-mud/internal/orchestrators/savegame"
	"github.com/KirkDiggler/jp-mud/internal/projections"
	"github.com/KirkDiggler/jp-mud/internal/quests"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play reads commands from standard input. Lines starting with ":" are client
commands (:help lists them); everything else is sent to the game.`,
	RunE: runPlay,
}

const clientHelp = `Client commands:
  :new            start a new game
  :save           save the current game
  :load ID        load a saved game
  :saves          list saved games
  :map            show the map
  :profile        show learning progress
  :quests         show the quest log
  :commands       list game commands
  :quit           leave`

// session prints the transcript as it grows
type session struct {
	app     *app
	out     io.Writer
	printed int
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	s := &session{app: a, out: cmd.OutOrStdout()}
	fmt.Fprintln(s.out, game.WelcomeMessage)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Fprint(s.out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := s.handle(ctx, strings.TrimSpace(line)); quit {
				return nil
			}
		}
	}
}

func (s *session) handle(ctx context.Context, line string) bool {
	if !strings.HasPrefix(line, ":") {
		s.dispatch(ctx, line)
		return false
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(s.out, clientHelp)
	case ":new":
		out, err := s.app.game.NewGame(ctx, &game.NewGameInput{})
		s.banner(out.Banner, err)
		s.app.game.Wait()
		s.flush()
	case ":save":
		out, err := s.app.saves.Save(ctx, &savegame.SaveInput{})
		if err != nil {
			fmt.Fprintf(s.out, "Save failed: %v\n", err)
			return false
		}
		where := "game server"
		if out.Local {
			where = "local save index only"
		}
		fmt.Fprintf(s.out, "Game saved! ID: %s (%s)\n", out.GameID, where)
	case ":load":
		if len(fields) < 2 {
			fmt.Fprintln(s.out, "usage: :load ID")
			return false
		}
		if _, err := s.app.saves.Load(ctx, &savegame.LoadInput{GameID: fields[1]}); err != nil {
			fmt.Fprintf(s.out, "Load failed: %v\n", err)
			return false
		}
		s.printed = 0
		s.flush()
	case ":saves":
		printSaves(ctx, s.out, s.app.saves)
	case ":map":
		printMap(s.out, projections.Map(s.app.store.Read().State))
	case ":profile":
		printProfile(s.out, projections.Profile(s.app.store.Read().State))
	case ":quests":
		printQuests(s.out, s.app.store.Read().State)
	case ":commands":
		printCommands(ctx, s.out, s.app.game)
	default:
		fmt.Fprintf(s.out, "Unknown client command %s\n", fields[0])
	}
	return false
}

func (s *session) dispatch(ctx context.Context, line string) {
	out, err := s.app.game.Dispatch(ctx, &game.DispatchInput{Text: line})
	if out == nil {
		s.banner(nil, err)
		return
	}
	if out.Rejected {
		fmt.Fprintf(s.out, "Japanese check: %s\n", out.ValidationFeedback)
		return
	}

	s.banner(out.Banner, err)
	if out.Bootstrapped {
		s.printed = 0
		s.app.game.Wait()
	}
	s.flush()

	if out.Challenge != nil {
		fmt.Fprintf(s.out, "Grammar challenge (%s): %s\n", out.Challenge.Quest.Title, out.Challenge.Prompt)
	}
}

// flush prints transcript messages not printed yet. A shorter transcript means
// the game was replaced, so it is printed from the start.
func (s *session) flush() {
	transcript := s.app.store.Read().Transcript
	if len(transcript) < s.printed {
		s.printed = 0
	}
	for _, msg := range transcript[s.printed:] {
		switch msg.Role {
		case entities.RoleUser:
			continue
		case entities.RoleSystem:
			fmt.Fprintf(s.out, "* %s\n", msg.Content)
		default:
			fmt.Fprintln(s.out, msg.Content)
		}
	}
	s.printed = len(transcript)
}

func (s *session) banner(b *game.Banner, err error) {
	switch {
	case b != nil && b.Detail != "":
		fmt.Fprintf(s.out, "[%s] %s: %s\n", b.Kind, b.Message, b.Detail)
	case b != nil:
		fmt.Fprintf(s.out, "[%s] %s\n", b.Kind, b.Message)
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func printMap(w io.Writer, view *projections.MapView) {
	if len(view.Nodes) == 0 {
		fmt.Fprintln(w, "No map yet.")
		return
	}
	for _, n := range view.Nodes {
		marker := " "
		switch {
		case n.Current:
			marker = "@"
		case n.Visited:
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-24s %-12s (%d,%d) characters:%d items:%d\n",
			marker, n.Name, n.JapaneseName, n.X, n.Y, n.CharacterCount, n.ItemCount)
	}
	for _, e := range view.Edges {
		fmt.Fprintf(w, "  %s <-> %s\n", e.Source, e.Target)
	}
}

func printProfile(w io.Writer, view *projections.ProfileView) {
	for _, level := range view.JLPT {
		fmt.Fprintf(w, "%s %3d%%\n", level.Label, level.Percent)
	}
	fmt.Fprintf(w, "Moves: %d  Quests completed: %d  Locations visited: %d  Items collected: %d\n",
		view.Moves, view.QuestsCompleted, view.LocationsVisited, view.ItemsCollected)
	fmt.Fprintf(w, "Vocabulary learned: %d (%d%% of total)  Grammar points mastered: %d\n",
		view.VocabularyLearned, view.VocabularyMastery, view.GrammarPointsMastered)
	for _, g := range view.RecentGrammar {
		fmt.Fprintf(w, "  %s: %s\n", g.Name, g.Explanation)
	}
	fmt.Fprintf(w, "Time played: %s\n", view.TimePlayed)
}

func printQuests(w io.Writer, state *entities.GameState) {
	if state == nil {
		fmt.Fprintln(w, "No game yet.")
		return
	}
	overview := quests.Overview(state.QuestLog)
	if overview.Empty() {
		fmt.Fprintln(w, "No quests yet.")
		return
	}

	sections := []struct {
		title  string
		quests []quests.QuestSummary
	}{
		{"Active", overview.Active},
		{"Available", overview.Available},
		{"Completed", overview.Completed},
		{"Failed", overview.Failed},
	}
	for _, section := range sections {
		if len(section.quests) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", section.title)
		for _, q := range section.quests {
			fmt.Fprintf(w, "  %s (%s) %d%%\n", q.Title, q.JapaneseTitle, q.Progress)
		}
	}
}

func printCommands(ctx context.Context, w io.Writer, svc game.Service) {
	out, err := svc.AvailableCommands(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if out.Fallback {
		fmt.Fprintln(w, "(game server unavailable, showing built-in commands)")
	}
	groups := map[string][]string{
		"Movement": out.Movement,
		"Actions":  out.Actions,
		"Japanese": out.JapaneseCommands,
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s: %s\n", name, strings.Join(groups[name], ", "))
	}
}
