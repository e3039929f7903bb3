package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ColumnID - 列的唯一标识符
type ColumnID string

// 列表输出的列
const (
	ColIndex    ColumnID = "index"
	ColCode     ColumnID = "code"
	ColFavorite ColumnID = "favorite"
)

// coinTableColumns 列顺序及对应的翻译键
var coinTableColumns = []struct {
	ID      ColumnID
	I18nKey string
}{
	{ColIndex, "col.index"},
	{ColCode, "col.code"},
	{ColFavorite, "col.favorite"},
}

// renderCoinTable 以表格输出过滤后的币种列表（--list 模式）
func renderCoinTable(out io.Writer, coins []string, favorites *FavoriteSet, lang Language) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(coinTableColumns))
	for _, col := range coinTableColumns {
		header = append(header, lookupText(lang, col.I18nKey))
	}
	t.AppendHeader(header)

	for i, coin := range coins {
		star := ""
		if favorites.Has(coin) {
			star = "★"
		}
		t.AppendRow(table.Row{i + 1, coin, star})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignCenter},
	})
	t.AppendFooter(table.Row{"", lookupText(lang, "col.total"), len(coins)})
	t.Render()
}
