package gtp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"goban-local/engine"
	"goban-local/types"
)

const protocolVersion = "2"

var errQuit = errors.New("quit")

// Server answers GTP commands by driving a GameEngine.
type Server struct {
	eng     engine.GameEngine
	name    string
	version string
	logger  *slog.Logger

	handlers map[string]func(args []string) (string, error)
	commands []string
}

// NewServer creates a GTP server for eng.
func NewServer(eng engine.GameEngine, version string, logger *slog.Logger) *Server {
	s := &Server{
		eng:     eng,
		name:    "goban-local",
		version: version,
		logger:  logger.With(slog.String("component", "gtp")),
	}
	s.register("protocol_version", func([]string) (string, error) { return protocolVersion, nil })
	s.register("name", func([]string) (string, error) { return s.name, nil })
	s.register("version", func([]string) (string, error) { return s.version, nil })
	s.register("known_command", s.knownCommand)
	s.register("list_commands", func([]string) (string, error) { return strings.Join(s.commands, "\n"), nil })
	s.register("boardsize", s.boardSize)
	s.register("clear_board", s.clearBoard)
	s.register("play", s.play)
	s.register("undo", s.undo)
	s.register("is_legal", s.isLegal)
	s.register("list_stones", s.listStones)
	s.register("captures", s.captures)
	s.register("quit", func([]string) (string, error) { return "", errQuit })
	return s
}

func (s *Server) register(name string, handler func(args []string) (string, error)) {
	if s.handlers == nil {
		s.handlers = make(map[string]func(args []string) (string, error))
	}
	s.handlers[name] = handler
	s.commands = append(s.commands, name)
}

// Serve reads commands from r and writes responses to w until quit or EOF.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	out := bufio.NewWriter(w)

	for scanner.Scan() {
		line := preprocess(scanner.Text())
		if line == "" {
			continue
		}

		id, name, args := parseCommand(line)
		s.logger.Debug("command", slog.String("line", line))

		result, err := s.dispatch(name, args)
		quit := errors.Is(err, errQuit)
		if quit {
			err = nil
		}
		if err != nil {
			s.logger.Debug("command failed", slog.String("command", name), slog.Any("err", err))
			fmt.Fprintf(out, "?%s %s\n\n", id, err)
		} else {
			fmt.Fprintf(out, "=%s %s\n\n", id, result)
		}
		if err := out.Flush(); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
		if quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read command: %w", err)
	}
	return nil
}

func (s *Server) dispatch(name string, args []string) (string, error) {
	handler, ok := s.handlers[name]
	if !ok {
		return "", errors.New("unknown command")
	}
	return handler(args)
}

// preprocess drops comments and control characters and trims the line.
func preprocess(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r < 32 || r == 127:
			return -1
		}
		return r
	}, line)
	return strings.TrimSpace(line)
}

// parseCommand splits a line into its optional numeric id, command name and arguments.
func parseCommand(line string) (id, name string, args []string) {
	fields := strings.Fields(line)
	if _, err := strconv.Atoi(fields[0]); err == nil {
		id = fields[0]
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return id, "", nil
	}
	return id, strings.ToLower(fields[0]), fields[1:]
}

func (s *Server) knownCommand(args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("syntax error")
	}
	_, ok := s.handlers[args[0]]
	return strconv.FormatBool(ok), nil
}

func (s *Server) boardSize(args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("syntax error")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.New("syntax error")
	}
	if size < 1 || size > MaxBoardSize {
		return "", errors.New("unacceptable size")
	}
	if err := s.eng.Reset(size); err != nil {
		return "", errors.New("unacceptable size")
	}
	return "", nil
}

func (s *Server) clearBoard([]string) (string, error) {
	size := s.eng.GetBoardState().Width()
	if err := s.eng.Reset(size); err != nil {
		return "", fmt.Errorf("failed to clear board: %w", err)
	}
	return "", nil
}

func (s *Server) play(args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("syntax error")
	}
	color, err := gtpToColor(args[0])
	if err != nil {
		return "", errors.New("syntax error")
	}
	state := s.eng.GetBoardState()
	x, y, err := gtpToPos(args[1], state.Width())
	if err != nil {
		return "", errors.New("syntax error")
	}

	// Turns strictly alternate and the rules have no pass.
	if x == -1 || color != types.Color(state.PlayerToMove) {
		return "", errors.New("illegal move")
	}
	if err := s.eng.PlayMove(x, y); err != nil {
		s.logger.Debug("illegal move",
			slog.String("color", colorToGTP(color)), slog.String("vertex", args[1]), slog.Any("err", err))
		return "", errors.New("illegal move")
	}
	return "", nil
}

func (s *Server) undo([]string) (string, error) {
	if err := s.eng.Undo(); err != nil {
		return "", errors.New("cannot undo")
	}
	return "", nil
}

func (s *Server) isLegal(args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("syntax error")
	}
	color, err := gtpToColor(args[0])
	if err != nil {
		return "", errors.New("syntax error")
	}
	state := s.eng.GetBoardState()
	x, y, err := gtpToPos(args[1], state.Width())
	if err != nil {
		return "", errors.New("syntax error")
	}
	if x == -1 {
		return "0", nil
	}
	if state.At(x, y) != types.Empty || types.Color(state.Forbidden[y][x]) == color {
		return "0", nil
	}
	return "1", nil
}

func (s *Server) listStones(args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("syntax error")
	}
	color, err := gtpToColor(args[0])
	if err != nil {
		return "", errors.New("syntax error")
	}
	state := s.eng.GetBoardState()
	var vertices []string
	for y := 0; y < state.Height(); y++ {
		for x := 0; x < state.Width(); x++ {
			if state.At(x, y) == color {
				vertices = append(vertices, posToGTP(x, y))
			}
		}
	}
	return strings.Join(vertices, " "), nil
}

func (s *Server) captures(args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("syntax error")
	}
	color, err := gtpToColor(args[0])
	if err != nil {
		return "", errors.New("syntax error")
	}
	return strconv.Itoa(s.eng.GetBoardState().Prisoners[color]), nil
}
