/*
Tqi starts an interactive TextQuest engine session.

It reads in a world file and starts the game in the designated starting
position. The interpreter will then start printing what is happening in the
game to stdout and will read user input from stdin until the game is over or
the "QUIT" command is input.

Usage:

	tqi [flags]

The flags are:

	--version
		Give the current version of TextQuest and then exit.

	-w/--world [FILE]
		Use the provided TQW resource file for the world. Defaults to the file
		"world.tqw" in the current working directory.

	-d/--direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input even if launched in
		a tty with stdin and stdout.

	--width [COLUMNS]
		Wrap output to the given number of columns. Defaults to 70.

	-c/--config [FILE]
		Read settings from the given config file.

	--history [FILE]
		Keep command history in the given file when reading with readline.

	--log-file [FILE]
		Write logs to the given file. Nothing is logged by default.

	--log-level [LEVEL]
		Log at the given level; one of debug, info, warn, or error.

	--log-format [FORMAT]
		Write logs as "json" or "console".

Every setting except --config and --version can also be given by an
environment variable named for it with the prefix TEXTQUEST_, such as
TEXTQUEST_WORLD or TEXTQUEST_LOG_LEVEL. Flags take precedence.

Once a session has started, the user input will be parsed for TextQuest
commands. For an explanation of the commands, type "HELP" once in a session. To
exit the interpreter, type "QUIT".
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/textquest"
	"github.com/dekarrin/textquest/internal/config"
	"github.com/dekarrin/textquest/internal/logging"
	"github.com/dekarrin/textquest/internal/tqw"
	"github.com/dekarrin/textquest/internal/version"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an issue
	// initializing the engine.
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.Bool("version", false, "Gives the version info")
	flagConfig  = pflag.StringP("config", "c", "", "read settings from the given config file")
)

func init() {
	pflag.StringP("world", "w", "world.tqw", "the TQW world data or manifest file that contains the definition of the world")
	pflag.BoolP("direct", "d", false, "force reading directly from stdin instead of going through GNU readline where possible")
	pflag.Int("width", 70, "wrap output to this many columns")
	pflag.String("history", "", "keep interactive command history in this file")
	pflag.String("log-file", "", "write logs to this file")
	pflag.String("log-level", "info", "minimum level to log: debug, info, warn, or error")
	pflag.String("log-format", "console", "log output format: json or console")
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg, err := config.Load(*flagConfig, pflag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	var logPaths []string
	if cfg.LogFile != "" {
		logPaths = append(logPaths, cfg.LogFile)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, logPaths...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	world, err := tqw.Load(cfg.WorldFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	logger.Info("loaded world", zap.String("file", cfg.WorldFile), zap.Strings("rooms", world.RoomNames()))

	gameEng, err := textquest.New(os.Stdin, os.Stdout, world, textquest.Options{
		Width:       cfg.Width,
		ForceDirect: cfg.Direct,
		HistoryFile: cfg.HistoryFile,
		Logger:      logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer gameEng.Close()

	if err := gameEng.RunUntilQuit(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}
}
