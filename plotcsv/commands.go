package plotcsv

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

type commandHandler func(ctx context.Context, s *Session, args cmdArgs) error

type cmdArgs struct {
	args []string
}

func (ca cmdArgs) NArgs() int {
	return len(ca.args)
}

// Bind assigns the leading arguments to vars and shifts them off.
func (ca *cmdArgs) Bind(vars ...any) error {
	if len(ca.args) < len(vars) {
		return errors.New("wrong number of arguments")
	}

	for i, v := range vars {
		if err := bindArg(v, ca.args[i]); err != nil {
			return err
		}
	}
	ca.args = ca.args[len(vars):]
	return nil
}

// Rest returns the remaining arguments joined by single spaces.
func (ca cmdArgs) Rest() string {
	return strings.Join(ca.args, " ")
}

func bindArg(v any, arg string) error {
	switch t := v.(type) {
	case *string:
		*t = arg
	case *int:
		i, err := strconv.Atoi(arg)
		if err != nil {
			return errors.New("expected an integer: " + arg)
		}
		*t = i
	default:
		return errors.New("unsupported bind target")
	}
	return nil
}

func quitCmd(ctx context.Context, s *Session, args cmdArgs) error {
	s.state = Stopped
	return nil
}

func legendCmd(ctx context.Context, s *Session, args cmdArgs) error {
	var onOff string
	if err := args.Bind(&onOff); err != nil {
		return usageError("legend on|off")
	}

	if onOff != "on" && onOff != "off" {
		return usageError("legend on|off")
	}

	if err := s.plotter.SetLegend(onOff == "on"); err != nil {
		return err
	}
	s.confirm("Legend turned %s.", onOff)
	return nil
}

func axisLabelCmd(axis Axis) commandHandler {
	return func(ctx context.Context, s *Session, args cmdArgs) error {
		label := args.Rest()
		if err := s.plotter.SetAxisLabel(axis, label); err != nil {
			return err
		}
		s.confirm("%slabel set to \"%s\"", axis, label)
		return nil
	}
}

func plotCmd(ctx context.Context, s *Session, args cmdArgs) error {
	if s.csvFile == "" {
		return ErrNoFileLoaded
	}

	var col int
	if err := args.Bind(&col); err != nil {
		return usageError("plot COLUMN [TITLE...]")
	}
	title := args.Rest()

	values, err := s.ReadColumn(s.csvFile, col)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return ErrEmptySeries
	}

	if err := s.plotter.SetStyle(StyleLines); err != nil {
		return err
	}
	return s.plotter.PlotSeries(values, title)
}

func gpCmd(ctx context.Context, s *Session, args cmdArgs) error {
	text := args.Rest()
	if text == "" {
		return usageError("gp COMMAND...")
	}
	return s.plotter.RawCommand(text)
}

func loadCmd(ctx context.Context, s *Session, args cmdArgs) error {
	path := args.Rest()
	if path == "" {
		return usageError("load FILE")
	}
	s.Load(path)
	return nil
}
