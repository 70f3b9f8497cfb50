package web

import (
	"strings"
	"testing"

	"github.com/dop251/goja"
)

func loadUI(t *testing.T) *goja.Runtime {
	t.Helper()
	vm := goja.New()
	if _, err := vm.RunString(Script()); err != nil {
		t.Fatalf("ui.js の評価に失敗しました: %v", err)
	}
	return vm
}

func evalString(t *testing.T, vm *goja.Runtime, src string) string {
	t.Helper()
	v, err := vm.RunString(src)
	if err != nil {
		t.Fatalf("%s の評価に失敗しました: %v", src, err)
	}
	return v.String()
}

func TestUIはDOMなしでも読み込める(t *testing.T) {
	vm := loadUI(t)
	for _, name := range []string{"escapeHTML", "buildQuery", "messageKind", "swatchColors", "livePreview", "renderResult"} {
		fn := vm.Get("contrastx").ToObject(vm).Get(name)
		if _, ok := goja.AssertFunction(fn); !ok {
			t.Fatalf("%s が関数として公開されていません", name)
		}
	}
}

func TestEscapeHTMLは特殊文字を置換する(t *testing.T) {
	vm := loadUI(t)
	got := evalString(t, vm, `contrastx.escapeHTML("<img src=x onerror='a'> & \"q\"")`)
	want := "&lt;img src=x onerror=&#39;a&#39;&gt; &amp; &quot;q&quot;"
	if got != want {
		t.Fatalf("escapeHTML = %q, want %q", got, want)
	}
	if got := evalString(t, vm, `contrastx.escapeHTML(null)`); got != "" {
		t.Fatalf("null は空文字になるはずです: %q", got)
	}
}

func TestBuildQueryは色をURLエンコードする(t *testing.T) {
	vm := loadUI(t)
	got := evalString(t, vm, `contrastx.buildQuery("#777", "rgb(0, 0, 0)", "")`)
	if got != "fg=%23777&bg=rgb(0%2C%200%2C%200)" {
		t.Fatalf("buildQuery = %q", got)
	}
	got = evalString(t, vm, `contrastx.buildQuery("a", "b", "normal-aa,graphics")`)
	if !strings.HasSuffix(got, "&criteria=normal-aa%2Cgraphics") {
		t.Fatalf("criteria が付与されていません: %q", got)
	}
}

func TestMessageKindは空入力を優先する(t *testing.T) {
	vm := loadUI(t)
	cases := []struct {
		input string
		want  string
	}{
		{input: `{errors: []}`, want: ""},
		{input: `{errors: [{field: "foreground", kind: "malformed"}]}`, want: "warning"},
		{input: `{errors: [{field: "foreground", kind: "malformed"}, {field: "background", kind: "empty"}]}`, want: "info"},
		{input: `{}`, want: ""},
	}
	for _, tc := range cases {
		if got := evalString(t, vm, "contrastx.messageKind("+tc.input+")"); got != tc.want {
			t.Fatalf("messageKind(%s) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSwatchColorsはサーバーのhexを使う(t *testing.T) {
	vm := loadUI(t)
	got := evalString(t, vm, `JSON.stringify(contrastx.swatchColors({foreground: {input: "red", hex: "#ff0000"}, background: {input: "oops"}}))`)
	if got != `{"foreground":"#ff0000","background":""}` {
		t.Fatalf("swatchColors = %s", got)
	}
}

func TestLivePreviewは最新の応答だけで塗る(t *testing.T) {
	vm := loadUI(t)
	if _, err := vm.RunString(`
		var pending = [];
		var painted = [];
		var update = contrastx.livePreview(function (fg, bg) {
			return new Promise(function (resolve) { pending.push(resolve); });
		}, function (colors) {
			painted.push(colors.foreground + "/" + colors.background);
		});
		update("#77", "white");
		update("#777", "white");
		pending[1]({foreground: {input: "#777", hex: "#777777"}, background: {input: "white", hex: "#ffffff"}});
		pending[0]({foreground: {input: "#77"}, background: {input: "white", hex: "#ffffff"}});
	`); err != nil {
		t.Fatalf("スクリプトの実行に失敗しました: %v", err)
	}
	if got := evalString(t, vm, `painted.join(",")`); got != "#777777/#ffffff" {
		t.Fatalf("古い応答で塗り替えられています: %q", got)
	}

	if _, err := vm.RunString(`
		update("#7", "");
		pending[2]({foreground: {input: "#7"}, background: {input: ""}});
	`); err != nil {
		t.Fatalf("スクリプトの実行に失敗しました: %v", err)
	}
	if got := evalString(t, vm, `painted[painted.length - 1]`); got != "/" {
		t.Fatalf("解析できない色はスウォッチを空にするはずです: %q", got)
	}
}

func TestRenderResultは結果をエスケープして描画する(t *testing.T) {
	vm := loadUI(t)
	fixture := `({
		ratio: 4.48,
		ratio_text: "4.48:1",
		band: "aa-large",
		checks: [
			{criterion: "normal-aa", label: "Normal text AA <b>", threshold: 4.5, result: "fail"},
			{criterion: "large-aa", label: "Large text AA", threshold: 3, result: "pass"}
		],
		suggestion: {color: {hex: "#000000"}, ratio: 21, min_ratio: 4.5, reached: true}
	})`
	html := evalString(t, vm, "contrastx.renderResult("+fixture+")")
	for _, want := range []string{
		`<p class="ratio">4.48:1</p>`,
		`<td class="result-fail">fail</td>`,
		`<td class="result-pass">pass</td>`,
		`<td>4.5:1</td>`,
		`Normal text AA &lt;b&gt;`,
		`<code>#000000</code> (21.00:1)`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("描画結果に %q が含まれていません: %s", want, html)
		}
	}
	if strings.Contains(html, "<b>") {
		t.Fatalf("ラベルがエスケープされていません: %s", html)
	}

	if got := evalString(t, vm, `contrastx.renderResult({ratio: null, checks: []})`); got != "" {
		t.Fatalf("比率がない場合は空のはずです: %q", got)
	}
}
