package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/nvkalinin/kalendar/cmd"
	"github.com/nvkalinin/kalendar/log"
)

type CLI struct {
	Debug bool `short:"d" long:"debug" env:"DEBUG" description:"Выводить отладочные сообщения в лог."`

	Server   cmd.Server   `command:"server" description:"Запустить сервер (rest + периодическая синхронизация)."`
	Sync     cmd.Sync     `command:"sync" description:"Пересобрать календари на сервере за указанные годы."`
	Backup   cmd.Backup   `command:"backup" description:"Сделать резервную копию хранилища bolt."`
	Holidays cmd.Holidays `command:"holidays" description:"Вывести праздники страны за год."`
	Month    cmd.Month    `command:"month" description:"Вывести сетку месяца в календаре страны."`
}

func main() {
	cli := &CLI{}
	parser := flags.NewParser(cli, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		log.Setup(cli.Debug)

		if cmd != nil {
			return cmd.Execute(args)
		}
		return nil
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
