// Command bufpoolctl is an interactive REPL for manually driving a
// BufferManager: pin, unpin, allocate, free, flush, and inspect
// statistics. It exists purely as a manual test harness and is not part
// of the buffer pool core.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tuannm99/bufpool/internal/bufferpool"
	"github.com/tuannm99/bufpool/internal/config"
	"github.com/tuannm99/bufpool/internal/pagestore"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a buffer pool YAML config (optional)")
		capacity   = flag.Int("capacity", 16, "frame count, used when -config is not given")
		policy     = flag.String("policy", "LRU", "LRU or MRU, used when -config is not given")
		storePath  = flag.String("store", "", "page store file path; empty uses an in-memory store")
	)
	flag.Parse()

	poolCapacity := *capacity
	pol := *policy
	sp := *storePath

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		poolCapacity = cfg.BufferPool.Capacity
		pol = cfg.BufferPool.Policy
		sp = cfg.PageStore.Path
	}

	store, closeStore, err := openStore(sp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pagestore: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	mgr, err := bufferpool.NewBufferManager(poolCapacity, pol, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bufferpool: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = mgr.Close() }()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "bufpool> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	fmt.Printf("bufpoolctl: capacity=%d policy=%s\n", poolCapacity, pol)
	fmt.Println("type \\help for commands")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			fmt.Println()
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "\\q" || line == "quit" || line == "exit" {
			return
		}
		if line == "\\help" {
			printHelp()
			continue
		}

		if err := dispatch(mgr, line); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func openStore(path string) (pagestore.Store, func(), error) {
	if path == "" {
		return pagestore.NewInMemoryStore(), func() {}, nil
	}

	fs, err := pagestore.NewFileStore(path)
	if err != nil {
		return nil, nil, err
	}
	return fs, func() { _ = fs.Close() }, nil
}

func printHelp() {
	fmt.Println(`commands:
  pin <pid> [empty]     pin page pid; "empty" skips the store read
  unpin <pid> [dirty]   unpin page pid; "dirty" marks it dirty first
  new <count>            allocate count pages, pin and print the first
  free <pid>             unpin/flush (if needed) and deallocate pid
  flush <pid>            flush a single resident, unpinned page
  flushall                flush every resident page
  unpinned                print the number of unpinned frames
  stat                    print buffer manager statistics
  resetstat               zero all statistics counters
  \q | quit | exit        quit
  \help                   show this help`)
}

func dispatch(mgr *bufferpool.BufferManager, line string) error {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "pin":
		pid, err := parsePID(args, 0)
		if err != nil {
			return err
		}
		isEmpty := len(args) > 1 && args[1] == "empty"
		if _, err := mgr.PinPage(pid, isEmpty); err != nil {
			return err
		}
		fmt.Printf("pinned page %d\n", pid)
		return nil

	case "unpin":
		pid, err := parsePID(args, 0)
		if err != nil {
			return err
		}
		dirty := len(args) > 1 && args[1] == "dirty"
		if err := mgr.UnpinPage(pid, dirty); err != nil {
			return err
		}
		fmt.Printf("unpinned page %d (dirty=%v)\n", pid, dirty)
		return nil

	case "new":
		count := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("new: bad count %q: %w", args[0], err)
			}
			count = n
		}
		pid, _, err := mgr.NewPage(count)
		if err != nil {
			return err
		}
		fmt.Printf("allocated %d pages, first pid=%d (pinned)\n", count, pid)
		return nil

	case "free":
		pid, err := parsePID(args, 0)
		if err != nil {
			return err
		}
		if err := mgr.FreePage(pid); err != nil {
			return err
		}
		fmt.Printf("freed page %d\n", pid)
		return nil

	case "flush":
		pid, err := parsePID(args, 0)
		if err != nil {
			return err
		}
		if err := mgr.FlushPage(pid); err != nil {
			return err
		}
		fmt.Printf("flushed page %d\n", pid)
		return nil

	case "flushall":
		if err := mgr.FlushAllPages(); err != nil {
			return err
		}
		fmt.Println("flushed all pages")
		return nil

	case "unpinned":
		fmt.Println(mgr.GetNumUnpinnedFrames())
		return nil

	case "stat":
		mgr.PrintStat()
		return nil

	case "resetstat":
		mgr.ResetStat()
		return nil

	default:
		return fmt.Errorf("unknown command %q (try \\help)", cmd)
	}
}

func parsePID(args []string, idx int) (pagestore.PageID, error) {
	if idx >= len(args) {
		return pagestore.InvalidPageID, fmt.Errorf("missing page id argument")
	}
	n, err := strconv.Atoi(args[idx])
	if err != nil {
		return pagestore.InvalidPageID, fmt.Errorf("bad page id %q: %w", args[idx], err)
	}
	return pagestore.PageID(n), nil
}
