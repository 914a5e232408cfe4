package config

import "github.com/namsral/flag"

type Config struct {
	MaxWrong  int
	HintAfter int
	Seed      int64
	Debug     bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("hangman", flag.ContinueOnError)
	fs.IntVar(&c.MaxWrong, "max-wrong", 6, "wrong guesses allowed before the round is lost")
	fs.IntVar(&c.HintAfter, "hint-after", 3, "wrong-guess count at which hints start showing automatically")
	fs.Int64Var(&c.Seed, "seed", 0, "random seed; 0 seeds from the entropy pool")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	err := fs.Parse(args)
	return err
}
