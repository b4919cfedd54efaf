package cmd

import (
	"fmt"

	"github.com/shouni/openrouter-image-kit/internal/builder"
	"github.com/shouni/openrouter-image-kit/internal/config"
	"github.com/shouni/openrouter-image-kit/pkg/history"

	"github.com/spf13/cobra"
)

// galleryCmd は、履歴画像のギャラリービューを表示するためのサブコマンドなのだ。
// 開けないエントリはスキップされる、ベストエフォートの表示なのだ。
var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "履歴画像のギャラリービューを表示するのだ。",
	Long: `履歴（または --favorites でお気に入り）の画像を、表示上限の件数まで
キャプション付きで一覧するのだ。壊れたファイルや消えたファイルがあっても
そこで止まらず、読めたものだけを表示するのだよ。`,
	RunE: galleryCommand,
}

func init() {
}

// galleryCommand は、gallery サブコマンドの実行ロジック本体なのだ。
func galleryCommand(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	manager := builder.BuildHistoryManager(cfg.SettingsDir)

	filter := history.FilterAll
	if opts.FavoritesOnly {
		filter = history.FilterFavorites
	}

	count := 0
	for item := range manager.Gallery(filter) {
		fmt.Printf("%s  (%s, %d bytes)\n", item.Caption, item.MimeType, len(item.Data))
		count++
	}

	if count == 0 {
		fmt.Println("表示できる画像が無いのだ")
		return nil
	}
	fmt.Printf("合計 %d 件を表示したのだ\n", count)
	return nil
}
