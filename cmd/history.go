package cmd

import (
	"fmt"

	"github.com/shouni/openrouter-image-kit/internal/builder"
	"github.com/shouni/openrouter-image-kit/internal/config"

	"github.com/spf13/cobra"
)

// historyCmd は、参照された画像パスの履歴を一覧表示するためのサブコマンドなのだ。
// 保存リストのうち、いまディスク上に存在するパスだけが表示されるのだ。
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "画像パスの履歴を新しい順に表示するのだ。",
	Long: `settings.json に記録された画像パスの履歴を表示するのだ。
--favorites を付けるとお気に入りだけの表示に切り替わるのだよ。
存在しなくなったパスは表示されないけれど、保存リストからは消さないのだ。`,
	RunE: historyCommand,
}

func init() {
}

// historyCommand は、history サブコマンドの実行ロジック本体なのだ。
func historyCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	manager := builder.BuildHistoryManager(cfg.SettingsDir)

	var choices []string
	if opts.FavoritesOnly {
		choices = manager.FavoritesChoices()
	} else {
		choices = manager.HistoryChoices()
	}

	if len(choices) == 0 {
		fmt.Println("表示できる履歴はまだ無いのだ")
		return nil
	}

	for _, p := range choices {
		marker := "  "
		if manager.IsFavorite(p) {
			marker = "★ "
		}
		fmt.Printf("%s%s\n", marker, p)
	}
	return nil
}
