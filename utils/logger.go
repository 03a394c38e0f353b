package utils

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func ts() string {
	return time.Now().Format("15:04:05")
}

func Info(format string, a ...interface{}) {
	infoColor.Printf("[%s] [INFO]  %s\n", ts(), fmt.Sprintf(format, a...))
}

func Success(format string, a ...interface{}) {
	successColor.Printf("[%s] [OK]    %s\n", ts(), fmt.Sprintf(format, a...))
}

func Warn(format string, a ...interface{}) {
	warnColor.Printf("[%s] [WARN]  %s\n", ts(), fmt.Sprintf(format, a...))
}

func Error(format string, a ...interface{}) {
	errorColor.Printf("[%s] [ERROR] %s\n", ts(), fmt.Sprintf(format, a...))
}
