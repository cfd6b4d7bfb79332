// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/albatross-go/staking/config"
	"github.com/albatross-go/staking/staking"
	"github.com/albatross-go/staking/thor"
	"github.com/albatross-go/staking/vrfseed"
)

func loadPolicy(ctx *cli.Context) (*config.Policy, error) {
	path := ctx.GlobalString("policy")
	if path == "" {
		return config.DefaultPolicy(), nil
	}
	return config.Load(path)
}

func statePath(ctx *cli.Context) string {
	return ctx.GlobalString("state")
}

func loadState(ctx *cli.Context) (*staking.Contract, error) {
	policy, err := loadPolicy(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "-policy")
	}

	raw, err := os.ReadFile(statePath(ctx))
	if os.IsNotExist(err) {
		return staking.New(policy), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "-state")
	}
	c, err := staking.Decode(policy, raw)
	if err != nil {
		return nil, errors.Wrap(err, "decoding contract state")
	}
	return c, nil
}

func saveState(ctx *cli.Context, c *staking.Contract) error {
	return os.WriteFile(statePath(ctx), c.Encode(), 0o644)
}

func parseAddress(s string) (thor.Address, error) {
	return thor.ParseAddress(s)
}

func parseValidatorKey(s string) (thor.ValidatorKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return thor.ValidatorKey{}, err
	}
	k, ok := thor.ValidatorKeyFromBytes(b)
	if !ok {
		return thor.ValidatorKey{}, fmt.Errorf("validator key must be %d bytes hex-encoded", thor.ValidatorKeyLength)
	}
	return k, nil
}

// cliSigner stands in for real signature-proof recovery (a collaborator
// concern, out of scope): the CLI lets the caller name the staker directly
// instead of constructing a real proof.
type cliSigner struct {
	staker thor.Address
}

func (s cliSigner) ComputeSigner([]byte) (thor.Address, error) {
	return s.staker, nil
}

var cmdInit = cli.Command{
	Name:  "init",
	Usage: "create an empty contract state file",
	Action: func(ctx *cli.Context) error {
		policy, err := loadPolicy(ctx)
		if err != nil {
			return errors.Wrap(err, "-policy")
		}
		return saveState(ctx, staking.New(policy))
	},
}

var cmdInspect = cli.Command{
	Name:  "inspect",
	Usage: "print the contract's total balance and active stakes",
	Action: func(ctx *cli.Context) error {
		c, err := loadState(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("total_balance: %d\n", c.TotalBalance())
		fmt.Println("active_sorted:")
		for _, s := range c.ActiveStakes() {
			fmt.Printf("  %s balance=%d validator_key=%s\n", s.StakerAddress, s.Balance, s.ValidatorKey)
		}
		return nil
	},
}

var cmdStake = cli.Command{
	Name:  "stake",
	Usage: "apply a Stake transaction",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "staker", Usage: "staker address (hex)"},
		cli.Uint64Flag{Name: "value", Usage: "amount to stake"},
		cli.StringFlag{Name: "validator-key", Usage: "hex-encoded validator key"},
		cli.StringFlag{Name: "reward", Usage: "optional reward address (hex)"},
	},
	Action: func(ctx *cli.Context) error {
		c, err := loadState(ctx)
		if err != nil {
			return err
		}
		staker, err := parseAddress(ctx.String("staker"))
		if err != nil {
			return errors.Wrap(err, "-staker")
		}
		key, err := parseValidatorKey(ctx.String("validator-key"))
		if err != nil {
			return errors.Wrap(err, "-validator-key")
		}
		var reward *thor.Address
		if s := ctx.String("reward"); s != "" {
			a, err := parseAddress(s)
			if err != nil {
				return errors.Wrap(err, "-reward")
			}
			reward = &a
		}
		_, err = c.CommitStake(staking.StakeInput{
			Staker:        staker,
			Value:         thor.Coin(ctx.Uint64("value")),
			ValidatorKey:  key,
			RewardAddress: reward,
		})
		if err != nil {
			return err
		}
		return saveState(ctx, c)
	},
}

var cmdRetire = cli.Command{
	Name:  "retire",
	Usage: "apply a Retire self-transaction",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "staker", Usage: "staker address (hex)"},
		cli.Uint64Flag{Name: "value", Usage: "value moved to inactive stake"},
		cli.Uint64Flag{Name: "fee", Usage: "fee paid"},
		cli.Uint64Flag{Name: "block-height", Usage: "current block height"},
	},
	Action: func(ctx *cli.Context) error {
		c, err := loadState(ctx)
		if err != nil {
			return err
		}
		staker, err := parseAddress(ctx.String("staker"))
		if err != nil {
			return errors.Wrap(err, "-staker")
		}
		tx := staking.Transaction{
			Sender:    staker,
			Recipient: staker,
			Value:     thor.Coin(ctx.Uint64("value")),
			Fee:       thor.Coin(ctx.Uint64("fee")),
			Data:      []byte{byte(staking.TypeRetire)},
		}
		_, err = c.ApplyRetire(tx, cliSigner{staker: staker}, uint32(ctx.Uint64("block-height")))
		if err != nil {
			return err
		}
		return saveState(ctx, c)
	},
}

var cmdUnpark = cli.Command{
	Name:  "unpark",
	Usage: "apply an Unpark self-transaction",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "staker", Usage: "staker address (hex)"},
		cli.Uint64Flag{Name: "total-value", Usage: "the staker's full active balance"},
		cli.Uint64Flag{Name: "fee", Usage: "fee paid"},
	},
	Action: func(ctx *cli.Context) error {
		c, err := loadState(ctx)
		if err != nil {
			return err
		}
		staker, err := parseAddress(ctx.String("staker"))
		if err != nil {
			return errors.Wrap(err, "-staker")
		}
		total := thor.Coin(ctx.Uint64("total-value"))
		fee := thor.Coin(ctx.Uint64("fee"))
		value, err := total.Sub(fee)
		if err != nil {
			return errors.Wrap(err, "fee exceeds total-value")
		}
		tx := staking.Transaction{
			Sender:    staker,
			Recipient: staker,
			Value:     value,
			Fee:       fee,
			Data:      []byte{byte(staking.TypeUnpark)},
		}
		_, err = c.ApplyUnpark(tx, cliSigner{staker: staker})
		if err != nil {
			return err
		}
		return saveState(ctx, c)
	},
}

var cmdUnstake = cli.Command{
	Name:  "unstake",
	Usage: "apply an Unstake transaction",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "staker", Usage: "staker address (hex)"},
		cli.Uint64Flag{Name: "value", Usage: "amount withdrawn"},
		cli.Uint64Flag{Name: "fee", Usage: "fee paid"},
		cli.Uint64Flag{Name: "block-height", Usage: "current block height"},
	},
	Action: func(ctx *cli.Context) error {
		c, err := loadState(ctx)
		if err != nil {
			return err
		}
		staker, err := parseAddress(ctx.String("staker"))
		if err != nil {
			return errors.Wrap(err, "-staker")
		}
		tx := staking.Transaction{
			Sender: staker,
			Value:  thor.Coin(ctx.Uint64("value")),
			Fee:    thor.Coin(ctx.Uint64("fee")),
		}
		_, err = c.ApplyUnstake(tx, uint32(ctx.Uint64("block-height")))
		if err != nil {
			return err
		}
		return saveState(ctx, c)
	},
}

var cmdSlash = cli.Command{
	Name:  "slash",
	Usage: "apply a Slash inherent",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "address", Usage: "address to slash (hex)"},
	},
	Action: func(ctx *cli.Context) error {
		c, err := loadState(ctx)
		if err != nil {
			return err
		}
		a, err := parseAddress(ctx.String("address"))
		if err != nil {
			return errors.Wrap(err, "-address")
		}
		_, err = c.ApplyInherent(staking.Inherent{Type: staking.InherentSlash, Data: a.Bytes()}, 0)
		if err != nil {
			return err
		}
		return saveState(ctx, c)
	},
}

var cmdFinalize = cli.Command{
	Name:  "finalize",
	Usage: "apply a FinalizeEpoch inherent",
	Flags: []cli.Flag{
		cli.Uint64Flag{Name: "block-height", Usage: "current block height"},
	},
	Action: func(ctx *cli.Context) error {
		c, err := loadState(ctx)
		if err != nil {
			return err
		}
		_, err = c.ApplyInherent(staking.Inherent{Type: staking.InherentFinalizeEpoch}, uint32(ctx.Uint64("block-height")))
		if err != nil {
			return err
		}
		return saveState(ctx, c)
	},
}

var cmdSelect = cli.Command{
	Name:  "select",
	Usage: "run validator selection against the current state",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "seed", Usage: "VRF seed bytes, as a raw string"},
	},
	Action: func(ctx *cli.Context) error {
		c, err := loadState(ctx)
		if err != nil {
			return err
		}
		assignments, err := c.SelectValidators(vrfseed.New([]byte(ctx.String("seed"))))
		if err != nil {
			return err
		}
		for i, a := range assignments {
			fmt.Printf("slot %d: %s (validator_key=%s)\n", i, a.StakerAddress, a.ValidatorKey)
		}
		return nil
	},
}
