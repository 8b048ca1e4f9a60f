package app

import (
	"fmt"
	"io"
	"os"

	"github.com/tonylturner/lsaddr/internal/config"
	"github.com/tonylturner/lsaddr/internal/errors"
	"github.com/tonylturner/lsaddr/internal/logging"
	"github.com/tonylturner/lsaddr/internal/ui"
	"github.com/tonylturner/lsaddr/internal/xgt"
)

// CommonOptions are shared by every command.
type CommonOptions struct {
	ConfigPath     string
	ConfigRequired bool // fail when ConfigPath does not exist
	Model          string
	MemorySizeBits int64
	LogLevel       string // overrides the config log_level when set
	LogFile        string
	Plain          bool
	Out            io.Writer // defaults to os.Stdout
}

// session is the resolved per-command environment.
type session struct {
	cfg    *config.Config
	logger *logging.Logger
	model  xgt.Model
	parser xgt.Parser
	out    io.Writer
	styles ui.Styles
	styled bool
}

func newSession(command string, opts CommonOptions) (*session, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath, opts.ConfigRequired)
	if err != nil {
		return nil, err
	}

	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewLoggerWithOptions(level, opts.LogFile, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	size, model, err := cfg.ResolveMemorySize(opts.Model, opts.MemorySizeBits)
	if err != nil {
		logger.Close()
		if opts.Model != "" {
			return nil, errors.WrapModelError(err, opts.Model)
		}
		return nil, err
	}

	// The process-wide size is set here and only here; the parser snapshots it.
	if err := xgt.SetBaseMemorySize(size); err != nil {
		logger.Close()
		return nil, err
	}
	parser, err := xgt.NewParser(xgt.BaseMemorySize())
	if err != nil {
		logger.Close()
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	styled := false
	if !opts.Plain {
		if f, ok := out.(*os.File); ok {
			styled = ui.UseStyle(cfg.Output.Style, f)
		} else {
			styled = cfg.Output.Style == config.StyleStyled
		}
	}

	logger.LogStartup(command, model.Name, size, opts.ConfigPath)

	return &session{
		cfg:    cfg,
		logger: logger,
		model:  model,
		parser: parser,
		out:    out,
		styles: ui.NewStyles(styled),
		styled: styled,
	}, nil
}

func (s *session) Close() {
	_ = s.logger.Close()
}

// parse resolves an alias and parses the address, logging the outcome.
func (s *session) parse(input string) (xgt.Address, error) {
	text := s.cfg.ResolveAlias(input)
	if text != input {
		s.logger.Debug("alias %s -> %s", input, text)
	}
	addr, err := s.parser.Parse(text)
	if err != nil {
		s.logger.LogParse(input, "", "", 0, 0, err)
		return xgt.Address{}, err
	}
	s.logger.LogParse(input, addr.Text, addr.DataType.String(), addr.StartBit, addr.EndBit, nil)
	return addr, nil
}

func (s *session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
