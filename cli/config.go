package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/lineup/config"
	"github.com/amonks/lineup/db"
	"github.com/amonks/lineup/subcmd"
)

var configUsage = strings.TrimSpace(`
usage: lineup config $verb
valid $verb are 'set', 'get', 'unset', 'keys', 'import'
`)

func configure(store *db.DB, args []string) error {
	if len(args) < 1 {
		return errors.New(configUsage)
	}
	verb, args := args[0], args[1:]

	switch verb {
	case "set":
		subcmd := subcmd.New("config set", "store a setting, like space_id or access_token")
		subcmd.SetArg("key", "string", "setting name").SetArg("value", "string", "setting value")
		if err := subcmd.Parse(args); err != nil {
			return err
		}
		return store.Set(subcmd.Arg(0), subcmd.Arg(1))

	case "get":
		subcmd := subcmd.New("config get", "print a stored setting")
		subcmd.SetArg("key", "string", "setting name")
		if err := subcmd.Parse(args); err != nil {
			return err
		}
		v, err := store.Get(subcmd.Arg(0))
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil

	case "unset":
		subcmd := subcmd.New("config unset", "remove a stored setting")
		subcmd.SetArg("key", "string", "setting name")
		if err := subcmd.Parse(args); err != nil {
			return err
		}
		return store.Delete(subcmd.Arg(0))

	case "keys":
		subcmd := subcmd.New("config keys", "list stored setting names")
		if err := subcmd.Parse(args); err != nil {
			return err
		}
		keys, err := store.Keys()
		if err != nil {
			return err
		}
		for _, key := range keys {
			fmt.Println(key)
		}
		return nil

	case "import":
		subcmd := subcmd.New("config import", "store space_id and access_token from a yaml file")
		subcmd.SetArg("file", "path", "yaml file with space_id and access_token keys")
		if err := subcmd.Parse(args); err != nil {
			return err
		}
		creds, err := config.ReadFile(subcmd.Arg(0))
		if err != nil {
			return err
		}
		if err := config.Save(store, creds); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "imported credentials for space '%s'\n", creds.SpaceID)
		return nil

	default:
		return fmt.Errorf("unknown config verb: '%s'\n%s", verb, configUsage)
	}
}
