package shell

import (
	"io"
	"strings"
)

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "<letter> - guess a letter\n")
	io.WriteString(w, "hint - ask for a hint; does not cost a guess\n")
	io.WriteString(w, "show - redisplay the gallows and word progress\n")
	io.WriteString(w, "stats - show your performance analysis\n")
	io.WriteString(w, "help - show this message\n")
	io.WriteString(w, "quit - leave the game immediately\n")
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	usage(&sb)
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}
