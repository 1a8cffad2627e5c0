package render

const pageCSS = `
:root { --stick: 98px; }
*{box-sizing:border-box}
body{font-family:system-ui,-apple-system,Segoe UI,Roboto,Arial;margin:0;color:#111827;background:#fff}
header{padding:14px 20px;border-bottom:1px solid #eef2f7;position:sticky;top:0;background:#fff;z-index:8}
.toolbar{display:flex;gap:8px;align-items:center;margin:8px 0}
select,button{padding:8px 10px;font-size:15px}
.wrap{display:flex;min-height:100vh}
nav{width:340px;border-right:1px solid #eef2f7;padding:12px;position:sticky;top:var(--stick);height:calc(100vh - var(--stick));overflow:auto;background:#fafbff}
main{flex:1;padding:16px 24px}
h1{margin:0 0 6px 0;font-size:20px}
small.muted{color:#6b7280}
.controls{display:flex;gap:8px;flex-wrap:wrap;margin-top:8px}
.controls input[type="text"]{flex:1;min-width:200px;padding:8px 10px;border:1px solid #e5e7eb;border-radius:8px}
.btn{padding:6px 10px;border:1px solid #e5e7eb;border-radius:8px;background:#fff;cursor:pointer;font-size:13px}
.btn.active{background:#eef2ff;border-color:#c7d2fe}
.chip{display:inline-block;padding:2px 8px;border-radius:999px;font-size:12px;margin-right:6px;background:#f3f4f6;border:1px solid #e5e7eb}
.chip.status.Modified{background:#fff7d6;border-color:#f6e39c}
.chip.status.Added{background:#e8fae8;border-color:#bfecc3}
.chip.status.Removed{background:#ffe7e6;border-color:#f5b5b2}
.chip.tag{background:#e9eefc;border-color:#c9d6ff}
.chip.approp{background:#ffe9c2;border-color:#ffd392}
.counts span{margin-right:12px}
.top5{background:#f7faff;border:1px solid #e5ecff;padding:10px;border-radius:8px;margin-top:10px}
.toc-link{display:block;padding:8px;border-left:3px solid transparent;border-radius:6px;margin-bottom:6px;text-decoration:none;color:#1f2937}
.toc-link:hover{background:#eef2ff}
.toc-link .sub{display:block;color:#6b7280;font-size:12px}
section.block{border-bottom:1px solid #eef2f7;padding:18px 0}
section.block h3{margin:0 0 6px 0;font-size:16px}
section.block pre{white-space:pre-wrap;word-wrap:break-word;font-family:ui-monospace,SFMono-Regular,Menlo,Consolas,monospace;background:#fafafa;padding:12px;border-radius:8px;border:1px solid #eee}
ins{background:#dbffdb;text-decoration:none}
del{background:#ffd9d9;text-decoration:line-through}
:target{scroll-margin-top:calc(var(--stick)+8px)}
.empty{color:#6b7280}
`

const pageJS = `
(() => {
  const q  = (s, el=document) => el.querySelector(s);
  const qa = (s, el=document) => Array.from(el.querySelectorAll(s));

  function wireFilters(){
    const search = q('#search');
    const btns = qa('.btn[data-filter]');
    const toggleUnchanged = q('#toggle-unchanged');
    const cards = qa('section.block');

    function apply() {
      const text = (search?.value || '').toLowerCase();
      const want = new Set(qa('.btn.active').map(b => b.dataset.filter));
      const showUnchanged = !!(toggleUnchanged && toggleUnchanged.checked);

      cards.forEach(card => {
        const tags = (card.dataset.tags || '').split(',').filter(Boolean);
        const status = card.dataset.status || '';
        const title = (card.dataset.title || '').toLowerCase();
        const id = (card.id || '').toLowerCase();

        let ok = true;
        if (want.size) {
          ok = tags.some(t => want.has(t)) || want.has(status);
        }
        if (ok && text) {
          ok = title.includes(text) || id.includes(text) || card.textContent.toLowerCase().includes(text);
        }
        if (ok && !showUnchanged && status === 'Unchanged') {
          ok = false;
        }
        card.style.display = ok ? '' : 'none';
      });
    }

    btns.forEach(b => b.addEventListener('click', () => { b.classList.toggle('active'); apply(); }));
    if (search) search.addEventListener('input', apply);
    if (toggleUnchanged) toggleUnchanged.addEventListener('input', apply);
    apply();
  }

  function wireSwitcher(){
    const sel = q('#bill-switch');
    const btn = q('#go-switch');
    if (!sel || !btn) return;
    btn.addEventListener('click', () => {
      window.location = '/view?preset=' + encodeURIComponent(sel.value) + '&nocache=1';
    });
  }

  wireFilters();
  wireSwitcher();
})();
`
