package app

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")
var errNoMesh = errors.New("no point cloud loaded")

// console runs text commands against the app, for scripting from the
// browser developer tools.
type console struct {
	app *App
}

var consoleCommands = map[string]func(ctx context.Context, a *App, args []string) ([]string, error){
	"point_size": func(ctx context.Context, a *App, args []string) ([]string, error) {
		switch len(args) {
		case 0:
		case 1:
			v, err := parseFloat(args[0])
			if err != nil {
				return nil, err
			}
			a.SetPointSize(v * 100)
		default:
			return nil, errArgumentNumber
		}
		m := a.Mesh()
		if m == nil {
			return nil, errNoMesh
		}
		return []string{formatFloat(m.Material.Size)}, nil
	},
	"opacity": func(ctx context.Context, a *App, args []string) ([]string, error) {
		switch len(args) {
		case 0:
		case 1:
			v, err := parseFloat(args[0])
			if err != nil {
				return nil, err
			}
			a.SetOpacity(v)
		default:
			return nil, errArgumentNumber
		}
		m := a.Mesh()
		if m == nil {
			return nil, errNoMesh
		}
		return []string{formatFloat(m.Material.Opacity)}, nil
	},
	"background": func(ctx context.Context, a *App, args []string) ([]string, error) {
		switch len(args) {
		case 0:
		case 1:
			if err := a.SetBackground(args[0]); err != nil {
				return nil, err
			}
		default:
			return nil, errArgumentNumber
		}
		a.mu.Lock()
		defer a.mu.Unlock()
		return []string{a.scene.Background.Hex()}, nil
	},
	"load": func(ctx context.Context, a *App, args []string) ([]string, error) {
		if len(args) != 1 {
			return nil, errArgumentNumber
		}
		if err := a.Load(ctx, args[0], ""); err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(a.Mesh().Len())}, nil
	},
	"points": func(ctx context.Context, a *App, args []string) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		a.mu.Lock()
		defer a.mu.Unlock()
		return []string{strconv.Itoa(a.scene.PointCount())}, nil
	},
}

func (c *console) Run(ctx context.Context, line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	res, err := fn(ctx, c.app, args[1:])
	if err != nil {
		return "", err
	}
	return strings.Join(res, "\n"), nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 3, 32)
}
