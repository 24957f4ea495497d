// Program antidote is a command-line utility for interacting with an
// Antidote database over its protocol buffer interface.
package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/creachadair/antidote"
	"github.com/creachadair/command"
	"github.com/creachadair/flax"
)

var flags struct {
	Addr    string        `flag:"addr,default=localhost,Comma-separated server addresses (host or host:port)"`
	Bucket  string        `flag:"bucket,default=default,Bucket name"`
	Timeout time.Duration `flag:"timeout,default=10s,Timeout for each operation"`
}

func main() {
	root := &command.C{
		Name: filepath.Base(os.Args[0]),
		Help: `Utilities for interacting with an Antidote database.

Each command runs as a single static transaction against the servers
named by the -addr flag.`,

		SetFlags: command.Flags(flax.MustBind, &flags),
		Commands: []*command.C{
			{
				Name:  "read",
				Usage: "<type> <key>",
				Help: `Read the value of an object.

The type must be one of: counter, set, reg, mvreg, map.`,
				Run: command.Adapt(runRead),
			},
			{
				Name:  "incr",
				Usage: "<key> <delta>",
				Help:  "Add a (possibly negative) delta to a counter.",
				Run:   command.Adapt(runIncr),
			},
			{
				Name:  "set-add",
				Usage: "<key> <element>...",
				Help:  "Add elements to a set.",
				Run:   command.Adapt(runSetAdd),
			},
			{
				Name:  "set-remove",
				Usage: "<key> <element>...",
				Help:  "Remove elements from a set.",
				Run:   command.Adapt(runSetRemove),
			},
			{
				Name:  "reg-put",
				Usage: "<key> <value>",
				Help:  "Assign the value of a last-writer-wins register.",
				Run:   command.Adapt(runRegPut),
			},
			{
				Name:  "create-dc",
				Usage: "<node>...",
				Help:  "Form the named nodes into a datacenter.",
				Run:   command.Adapt(runCreateDC),
			},
			{
				Name: "descriptor",
				Help: "Print the connection descriptor of the datacenter (base64).",
				Run:  command.Adapt(runDescriptor),
			},
			{
				Name:  "connect-dc",
				Usage: "<descriptor>...",
				Help:  "Connect the datacenter to the ones named by the given base64 descriptors.",
				Run:   command.Adapt(runConnectDC),
			},
			command.VersionCommand(),
			command.HelpCommand(nil),
		},
	}
	command.RunOrFail(root.NewEnv(nil).MergeFlags(true), os.Args[1:])
}

// withClient dials the servers named by -addr and calls f with the resulting
// client and the whole-operation context.
func withClient(env *command.Env, f func(*command.Env, *antidote.Client) error) error {
	hosts, err := parseHosts(flags.Addr)
	if err != nil {
		return err
	}
	cli, err := antidote.NewClient(hosts, nil)
	if err != nil {
		return err
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(env.Context(), flags.Timeout)
	defer cancel()
	return f(env.SetContext(ctx), cli)
}

func parseHosts(s string) ([]antidote.Host, error) {
	var hosts []antidote.Host
	for _, addr := range strings.Split(s, ",") {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		name, port, err := net.SplitHostPort(addr)
		if err != nil {
			hosts = append(hosts, antidote.Host{Name: addr})
			continue
		}
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid port %q: %w", port, err)
		}
		hosts = append(hosts, antidote.Host{Name: name, Port: p})
	}
	if len(hosts) == 0 {
		return nil, fmt.Errorf("no server addresses")
	}
	return hosts, nil
}

func bucket() antidote.Bucket { return antidote.Bucket{Name: []byte(flags.Bucket)} }

func runRead(env *command.Env, kind, key string) error {
	return withClient(env, func(env *command.Env, cli *antidote.Client) error {
		ctx, tx, b := env.Context(), cli.StaticTransaction(), bucket()
		k := antidote.Key(key)
		switch kind {
		case "counter":
			v, err := b.ReadCounter(ctx, tx, k)
			if err != nil {
				return err
			}
			fmt.Println(v)
		case "set":
			elems, err := b.ReadSet(ctx, tx, k)
			if err != nil {
				return err
			}
			for _, e := range elems {
				fmt.Println(string(e))
			}
		case "reg":
			v, err := b.ReadReg(ctx, tx, k)
			if err != nil {
				return err
			}
			fmt.Println(string(v))
		case "mvreg":
			vs, err := b.ReadMVReg(ctx, tx, k)
			if err != nil {
				return err
			}
			for _, v := range vs {
				fmt.Println(string(v))
			}
		case "map":
			m, err := b.ReadMap(ctx, tx, k)
			if err != nil {
				return err
			}
			for _, mk := range m.ListMapKeys() {
				fmt.Println(mk)
			}
		default:
			return env.Usagef("unknown object type %q", kind)
		}
		return nil
	})
}

func runIncr(env *command.Env, key, delta string) error {
	d, err := strconv.ParseInt(delta, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid delta: %w", err)
	}
	return withClient(env, func(env *command.Env, cli *antidote.Client) error {
		return bucket().Update(env.Context(), cli.StaticTransaction(),
			antidote.CounterInc(antidote.Key(key), d))
	})
}

func runSetAdd(env *command.Env, key string, elems ...string) error {
	return withClient(env, func(env *command.Env, cli *antidote.Client) error {
		return bucket().Update(env.Context(), cli.StaticTransaction(),
			antidote.SetAdd(antidote.Key(key), toBytes(elems)...))
	})
}

func runSetRemove(env *command.Env, key string, elems ...string) error {
	return withClient(env, func(env *command.Env, cli *antidote.Client) error {
		return bucket().Update(env.Context(), cli.StaticTransaction(),
			antidote.SetRemove(antidote.Key(key), toBytes(elems)...))
	})
}

func runRegPut(env *command.Env, key, value string) error {
	return withClient(env, func(env *command.Env, cli *antidote.Client) error {
		return bucket().Update(env.Context(), cli.StaticTransaction(),
			antidote.RegPut(antidote.Key(key), []byte(value)))
	})
}

func runCreateDC(env *command.Env, nodes ...string) error {
	return withClient(env, func(env *command.Env, cli *antidote.Client) error {
		return cli.CreateDC(env.Context(), nodes)
	})
}

func runDescriptor(env *command.Env) error {
	return withClient(env, func(env *command.Env, cli *antidote.Client) error {
		d, err := cli.ConnectionDescriptor(env.Context())
		if err != nil {
			return err
		}
		fmt.Println(base64.StdEncoding.EncodeToString(d))
		return nil
	})
}

func runConnectDC(env *command.Env, encoded ...string) error {
	descs := make([][]byte, len(encoded))
	for i, e := range encoded {
		d, err := base64.StdEncoding.DecodeString(e)
		if err != nil {
			return fmt.Errorf("invalid descriptor: %w", err)
		}
		descs[i] = d
	}
	return withClient(env, func(env *command.Env, cli *antidote.Client) error {
		return cli.ConnectToDCs(env.Context(), descs)
	})
}

func toBytes(ss []string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}
