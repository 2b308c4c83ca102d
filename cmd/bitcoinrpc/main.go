// bitcoinrpc 命令行工具：向 Bitcoin Core 节点发起任意 RPC 调用
//
// 示例：
//
//	bitcoinrpc call getblockchaininfo --url http://127.0.0.1:8332 --user u --pass p
//	bitcoinrpc call getblockhash 100 --wallet ""
//	bitcoinrpc call getbalance '"*"' 6 --wallet mywallet
//
// 位置参数按 JSON 字面量解析，解析失败时按原样字符串发送。
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/weisyn/bitcoinrpc"
	"github.com/weisyn/bitcoinrpc/core/methods"
	"github.com/weisyn/bitcoinrpc/core/observe"
	"github.com/weisyn/bitcoinrpc/pkg/log"
)

var (
	flagURL     string
	flagUser    string
	flagPass    string
	flagWallet  string
	flagTimeout time.Duration
	flagRetries int
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "bitcoinrpc",
		Short: "Bitcoin Core JSON-RPC 客户端工具",
	}

	root.PersistentFlags().StringVar(&flagURL, "url", "http://127.0.0.1:8332", "节点 RPC 地址")
	root.PersistentFlags().StringVar(&flagUser, "user", "", "RPC 用户名")
	root.PersistentFlags().StringVar(&flagPass, "pass", "", "RPC 密码")
	root.PersistentFlags().StringVar(&flagWallet, "wallet", "", "钱包名（钱包作用域调用）")
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "按次请求超时")
	root.PersistentFlags().IntVar(&flagRetries, "retries", 3, "最大重试次数")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "输出调用生命周期日志")

	root.AddCommand(newCallCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <method> [params...]",
		Short: "发起一次 RPC 调用并打印原始结果",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			req := methods.Raw{
				Method: args[0],
				Params: parseParams(args[1:]),
			}
			if flagWallet != "" {
				req.Wallet = flagWallet
			}

			resp, err := client.Call(cmd.Context(), req)
			if err != nil {
				return err
			}

			var pretty json.RawMessage = resp.Result
			out, merr := json.MarshalIndent(pretty, "", "  ")
			if merr != nil {
				out = resp.Result
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newClient() (*bitcoinrpc.Client, error) {
	var observer observe.Observer = observe.Nop{}
	if flagVerbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		observer = observe.NewLogObserver(log.NewZap(zl))
	}

	return bitcoinrpc.New(bitcoinrpc.Config{
		BaseURL:    flagURL,
		Username:   flagUser,
		Password:   flagPass,
		Timeout:    flagTimeout,
		MaxRetries: flagRetries,
		Observer:   observer,
	})
}

// parseParams 把命令行参数解析为 JSON 位置参数
func parseParams(args []string) []any {
	params := make([]any, 0, len(args))
	for _, arg := range args {
		var v any
		if err := json.Unmarshal([]byte(arg), &v); err != nil {
			params = append(params, arg)
			continue
		}
		params = append(params, v)
	}
	return params
}
