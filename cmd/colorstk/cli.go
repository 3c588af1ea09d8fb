package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Yat-Muk/colorstk/internal/application"
	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/palette"
	"github.com/Yat-Muk/colorstk/internal/domain/valuesync"
	"github.com/Yat-Muk/colorstk/internal/pkg/errors"
	"github.com/Yat-Muk/colorstk/internal/pkg/logger"
	"github.com/Yat-Muk/colorstk/internal/tui/view"
)

// swatch 用終端背景色畫一個色塊；不支持顏色的終端只輸出空格
func swatch(out *termenv.Output, html string) string {
	return out.String("      ").Background(out.Color(html)).String()
}

// parseColor 解析命令行顏色：#rrggbb、#rgb、SVG 名稱，或 from 空間下的一組數值
func parseColor(args []string, from string, vrange valuesync.ValueRange, wref colorspace.WhiteRef) (colorspace.Color, error) {
	if from != "" {
		space, err := colorspace.ParseSpace(from)
		if err != nil {
			return colorspace.Color{}, errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput, err.Error())
		}
		fields, err := valuesync.ParseFields(space, args, vrange)
		if err != nil {
			return colorspace.Color{}, errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput, err.Error())
		}
		c, err := valuesync.Construct(space, fields, vrange, wref)
		if err != nil {
			return colorspace.Color{}, errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput, err.Error())
		}
		if !c.IsLegal() {
			return colorspace.Color{}, errors.Wrap(errors.ErrIllegalColor, errors.CodeIllegalColor,
				fmt.Sprintf("%s %s 超出 sRGB 色域", space, strings.Join(args, " ")))
		}
		return c, nil
	}

	if len(args) != 1 {
		return colorspace.Color{}, errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput, "需要一個顏色，例如 #ff8800 或 teal")
	}
	raw := strings.TrimSpace(args[0])
	if c, ok := colorspace.Named(strings.ToLower(raw), wref); ok {
		return c, nil
	}
	c, err := colorspace.FromHTML(raw, wref)
	if err != nil {
		return colorspace.Color{}, errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput,
			fmt.Sprintf("無法識別的顏色 %q", raw))
	}
	return c, nil
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		from   string
		to     []string
		vrange string
	)

	cmd := &cobra.Command{
		Use:   "convert <顏色> | --from <空間> <數值...>",
		Short: "把顏色換算到各個色彩空間",
		Example: `  colorstk convert '#ff8800'
  colorstk convert teal --to CIE-LAB --to CMYK
  colorstk convert --from HSL 120 1 0.5
  colorstk convert --from YIQ -- 0.5 -0.1 0.2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := a.load(cmd)
			if err != nil {
				return err
			}
			cfg := deps.Config

			wref, err := cfg.WhiteRef()
			if err != nil {
				return err
			}
			r, err := cfg.ValueRange()
			if err != nil {
				return err
			}
			if vrange != "" {
				if r, err = valuesync.ParseValueRange(vrange); err != nil {
					return err
				}
			}
			spaces, err := cfg.Spaces()
			if err != nil {
				return err
			}
			if len(to) > 0 {
				if spaces, err = colorspace.ParseSpaces(to); err != nil {
					return err
				}
			}

			c, err := parseColor(args, from, r, wref)
			if err != nil {
				return err
			}
			deps.Log.Debug("換算顏色", logger.Color("color", c.HTML()))
			return printConversion(cmd.OutOrStdout(), c, spaces, r)
		},
	}

	// 負數會被當成短選項
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if strings.Contains(err.Error(), "unknown shorthand flag") {
			return fmt.Errorf("%w（負數請放在 -- 之後，例如 --from YIQ -- 0.5 -0.1 0.2）", err)
		}
		return err
	})
	cmd.Flags().StringVar(&from, "from", "", "輸入數值所在的色彩空間")
	cmd.Flags().StringSliceVar(&to, "to", nil, "輸出的色彩空間（默認使用設置中的列表）")
	cmd.Flags().StringVar(&vrange, "range", "", "sRGB 數值範圍: 0-255 或 0-1")
	return cmd
}

func printConversion(w io.Writer, c colorspace.Color, spaces []colorspace.Space, r valuesync.ValueRange) error {
	out := termenv.NewOutput(w)
	fmt.Fprintf(w, "%s %s  %s\n", swatch(out, c.HTML()), c.HTML(), c.Name())

	width := 0
	for _, sp := range spaces {
		width = max(width, len(sp.String()))
	}
	for _, sp := range spaces {
		p, err := valuesync.ProjectColor(c, sp, r)
		if err != nil {
			return err
		}
		labels := sp.FieldLabels()
		parts := make([]string, len(p.Fields))
		for i, f := range p.Fields {
			if sp == colorspace.Hex {
				parts[i] = valuesync.FormatValue(f)
				continue
			}
			parts[i] = labels[i] + " " + valuesync.FormatValue(f)
		}
		fmt.Fprintf(w, "%-*s  %s\n", width, sp.String(), strings.Join(parts, "  "))
	}
	return nil
}

func newSchemesCmd(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:     "schemes <顏色>",
		Short:   "生成配色方案",
		Example: "  colorstk schemes '#3366cc' --mode RGB",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := a.load(cmd)
			if err != nil {
				return err
			}
			wref, err := deps.Config.WhiteRef()
			if err != nil {
				return err
			}
			m, err := deps.Config.SchemeMode()
			if err != nil {
				return err
			}
			if mode != "" {
				if m, err = colorspace.ParseSchemeMode(mode); err != nil {
					return err
				}
			}

			c, err := parseColor(args, "", valuesync.Range255, wref)
			if err != nil {
				return err
			}
			printSchemes(cmd.OutOrStdout(), c, m)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "色輪模式: RYB 或 RGB（默認使用設置）")
	return cmd
}

func printSchemes(w io.Writer, c colorspace.Color, mode colorspace.SchemeMode) {
	out := termenv.NewOutput(w)
	info := application.Info(c, mode)

	fmt.Fprintf(w, "%s %s  %s 色輪\n", swatch(out, c.HTML()), c.HTML(), mode)
	fmt.Fprintf(w, "互補色  %s %s\n", swatch(out, info.Complementary.HTML()), info.Complementary.HTML())

	idx := 0
	for _, g := range view.SchemeGroups(application.Schemes(c, mode)) {
		fmt.Fprintln(w, g.Title)
		for _, sc := range g.Colors {
			idx++
			fmt.Fprintf(w, "  %2d. %s %s\n", idx, swatch(out, sc.HTML()), sc.HTML())
		}
	}
}

func newPaletteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "palette",
		Aliases: []string{"pal"},
		Short:   "管理調色板",
	}

	// 調色板命令都需要可讀的調色板文件
	loadPalettes := func(cmd *cobra.Command) (*AppDependencies, error) {
		deps, err := a.load(cmd)
		if err != nil {
			return nil, err
		}
		if deps.PaletteErr != nil {
			return nil, deps.PaletteErr
		}
		return deps, nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list [名稱]",
			Short: "列出調色板，或列出一個調色板中的顏色",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				deps, err := loadPalettes(cmd)
				if err != nil {
					return err
				}
				wref, err := deps.Config.WhiteRef()
				if err != nil {
					return err
				}
				if len(args) == 1 {
					p, err := deps.Palettes.Get(args[0])
					if err != nil {
						return err
					}
					printPaletteColors(cmd.OutOrStdout(), p, wref)
					return nil
				}
				printPalettes(cmd.OutOrStdout(), deps.Palettes.List(), wref)
				return nil
			},
		},
		&cobra.Command{
			Use:   "create [名稱]",
			Short: "新建空調色板（不指定名稱時自動命名）",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				deps, err := loadPalettes(cmd)
				if err != nil {
					return err
				}
				name := deps.Palettes.DefaultName()
				if len(args) == 1 {
					name = args[0]
				}
				if err := deps.Palettes.Create(contextOf(cmd), name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ 新建調色板 %s\n", name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <名稱> <顏色>...",
			Short: "把顏色加入調色板",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				deps, err := loadPalettes(cmd)
				if err != nil {
					return err
				}
				wref, err := deps.Config.WhiteRef()
				if err != nil {
					return err
				}
				name := args[0]
				for _, raw := range args[1:] {
					c, err := parseColor([]string{raw}, "", valuesync.Range255, wref)
					if err != nil {
						return err
					}
					if err := deps.Palettes.Append(contextOf(cmd), name, palette.FromColor(c)); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "✓ %s 已加入 %s\n", c.HTML(), name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:     "delete <名稱>...",
			Aliases: []string{"rm"},
			Short:   "刪除調色板",
			Args:    cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				deps, err := loadPalettes(cmd)
				if err != nil {
					return err
				}
				if err := deps.Palettes.DeleteMany(contextOf(cmd), args); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ 已刪除 %s\n", strings.Join(args, ", "))
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove-color <名稱> <序號>...",
			Short: "按序號從調色板中刪除顏色（序號從 1 開始）",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				deps, err := loadPalettes(cmd)
				if err != nil {
					return err
				}
				p, err := deps.Palettes.Get(args[0])
				if err != nil {
					return err
				}
				colors, err := pickColors(p, args[1:])
				if err != nil {
					return err
				}
				if err := deps.Palettes.DeleteColors(contextOf(cmd), p.Name, colors); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ 從 %s 刪除 %d 個顏色\n", p.Name, len(colors))
				return nil
			},
		},
	)
	return cmd
}

// pickColors 按 1 起始的序號取出顏色，重複的序號只算一次
func pickColors(p palette.Palette, indexes []string) ([]palette.RGB, error) {
	var out []palette.RGB
	seen := make(map[int]bool, len(indexes))
	for _, raw := range indexes {
		i, err := strconv.Atoi(raw)
		if err != nil || i < 1 || i > len(p.Colors) {
			return nil, errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput,
				fmt.Sprintf("無效的序號 %q（共 %d 個顏色）", raw, len(p.Colors)))
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, p.Colors[i-1])
	}
	return out, nil
}

func printPalettes(w io.Writer, list []palette.Palette, wref colorspace.WhiteRef) {
	if len(list) == 0 {
		fmt.Fprintln(w, "(沒有調色板)")
		return
	}
	out := termenv.NewOutput(w)
	for i, p := range list {
		var preview strings.Builder
		for j, rgb := range p.Colors {
			if j == 8 {
				preview.WriteString(" …")
				break
			}
			preview.WriteString(out.String("  ").Background(out.Color(rgb.Color(wref).HTML())).String())
		}
		fmt.Fprintf(w, "%2d. %s (%d) %s\n", i+1, p.Name, len(p.Colors), preview.String())
	}
}

func printPaletteColors(w io.Writer, p palette.Palette, wref colorspace.WhiteRef) {
	out := termenv.NewOutput(w)
	fmt.Fprintf(w, "%s (%d)\n", p.Name, len(p.Colors))
	for i, rgb := range p.Colors {
		c := rgb.Color(wref)
		ints := c.Ints()
		fmt.Fprintf(w, "%2d. %s %s (%d, %d, %d)\n", i+1, swatch(out, c.HTML()), c.HTML(), ints[0], ints[1], ints[2])
	}
}
