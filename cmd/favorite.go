package cmd

import (
	"fmt"

	"github.com/shouni/openrouter-image-kit/internal/builder"
	"github.com/shouni/openrouter-image-kit/internal/config"
	"github.com/shouni/openrouter-image-kit/pkg/domain"

	"github.com/spf13/cobra"
)

// favoriteCmd は、お気に入りの追加・削除をまとめる親コマンドなのだ。
var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "画像パスのお気に入りを操作するのだ。",
	Long: `履歴とは独立したお気に入りリストを操作するのだ。
追加はパスがディスク上に存在するときだけ、削除は存在チェックなしで行うのだよ。`,
}

var favoriteAddCmd = &cobra.Command{
	Use:     "add <path>",
	Short:   "画像パスをお気に入りに追加するのだ。",
	Example: "  ap-imagegen-go favorite add /path/to/image.png",
	Args:    cobra.ExactArgs(1),
	RunE:    favoriteAddCommand,
}

var favoriteRemoveCmd = &cobra.Command{
	Use:     "remove <path>",
	Short:   "画像パスをお気に入りから外すのだ。",
	Example: "  ap-imagegen-go favorite remove /path/to/image.png",
	Args:    cobra.ExactArgs(1),
	RunE:    favoriteRemoveCommand,
}

func init() {
	favoriteCmd.AddCommand(favoriteAddCmd, favoriteRemoveCmd)
}

// favoriteAddCommand は add サブコマンドの実行ロジック本体なのだ。
func favoriteAddCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	manager := builder.BuildHistoryManager(cfg.SettingsDir)

	path := domain.StripQuotes(args[0])
	manager.AddToFavorites(path)

	// 追加操作は存在しないパスを黙って無視するので、結果で判定して伝えるのだ
	if !manager.IsFavorite(path) {
		return fmt.Errorf("お気に入りに追加できなかったのだ。パスが存在するか確認してほしいのだ: %s", path)
	}
	fmt.Printf("★ お気に入りに追加したのだ: %s\n", path)
	return nil
}

// favoriteRemoveCommand は remove サブコマンドの実行ロジック本体なのだ。
func favoriteRemoveCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	manager := builder.BuildHistoryManager(cfg.SettingsDir)

	path := domain.StripQuotes(args[0])
	manager.RemoveFromFavorites(path)

	fmt.Printf("お気に入りから外したのだ: %s\n", path)
	return nil
}
